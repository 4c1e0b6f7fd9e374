package models

// Prediction is the output of the classical regression forecast script.
type Prediction struct {
	Symbol         string  `json:"symbol"`
	PredictedClose float64 `json:"predicted_close"`
}

// LSTMMetrics are the validation metrics reported by the LSTM script.
type LSTMMetrics struct {
	RMSE    float64 `json:"rmse"`
	MAPE    float64 `json:"mape"`
	R2Score float64 `json:"r2Score"`
}

// LSTMPoint is one forecast day.
type LSTMPoint struct {
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predictedPrice"`
}

// LSTMPrediction is the full multi-day forecast produced by the LSTM script.
type LSTMPrediction struct {
	Symbol            string      `json:"symbol"`
	LookbackPeriod    int         `json:"lookbackPeriod"`
	TrainingSamples   int         `json:"trainingSamples"`
	ValidationSamples int         `json:"validationSamples"`
	LastPrice         float64     `json:"lastPrice"`
	LastDate          string      `json:"lastDate"`
	Metrics           LSTMMetrics `json:"metrics"`
	Predictions       []LSTMPoint `json:"predictions"`
}
