package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"CryptoInfo/internal/domain/models"
	drepo "CryptoInfo/internal/domain/repository"
	apphttp "CryptoInfo/pkg/http"
	"CryptoInfo/pkg/logger"
)

const (
	predictScript = "predict.py"
	lstmScript    = "LSTMPredictor.py"
)

// Runner invokes the Python forecasting scripts as subprocesses and
// parses their JSON output.
type Runner struct {
	pythonCmd  string
	scriptsDir string
	timeout    time.Duration
	log        *logger.Logger
}

// New creates a Forecaster backed by the Python scripts in scriptsDir.
func New(pythonCmd, scriptsDir string, timeout time.Duration, log *logger.Logger) drepo.Forecaster {
	return &Runner{
		pythonCmd:  pythonCmd,
		scriptsDir: scriptsDir,
		timeout:    timeout,
		log:        log,
	}
}

// Predict runs the linear-regression forecast for symbol.
func (r *Runner) Predict(ctx context.Context, symbol string) (*models.Prediction, error) {
	out, err := r.run(ctx, predictScript, NormalizeSymbol(symbol))
	if err != nil {
		return nil, err
	}
	var p models.Prediction
	if err := json.Unmarshal(out, &p); err != nil {
		return nil, fmt.Errorf("decode prediction output: %w", err)
	}
	return &p, nil
}

// PredictLSTM runs the LSTM forecast for symbol with the given lookback
// window and forecast horizon in days.
func (r *Runner) PredictLSTM(ctx context.Context, symbol string, lookback, days int) (*models.LSTMPrediction, error) {
	out, err := r.run(ctx, lstmScript, NormalizeSymbol(symbol), strconv.Itoa(lookback), strconv.Itoa(days))
	if err != nil {
		return nil, err
	}
	var p models.LSTMPrediction
	if err := json.Unmarshal(out, &p); err != nil {
		return nil, fmt.Errorf("decode lstm output: %w", err)
	}
	return &p, nil
}

func (r *Runner) run(ctx context.Context, script string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmdArgs := append([]string{filepath.Join(r.scriptsDir, script)}, args...)
	cmd := exec.CommandContext(ctx, r.pythonCmd, cmdArgs...)

	start := time.Now()
	out, err := cmd.CombinedOutput()
	elapsed := time.Since(start)

	if r.log != nil {
		r.log.Debug("forecast script finished",
			logger.String("script", script),
			logger.Duration("elapsed", elapsed),
		)
	}

	if ctx.Err() == context.DeadlineExceeded {
		return nil, apphttp.InternalErrorf("forecast script %s timed out after %s", script, r.timeout)
	}

	payload, ok := ExtractJSON(out)
	if err != nil && !ok {
		return nil, apphttp.InternalErrorf("forecast script %s failed: %v", script, err)
	}
	if !ok {
		return nil, apphttp.InternalErrorf("forecast script %s produced no JSON output", script)
	}

	if msg, scriptErr := scriptError(payload); scriptErr {
		return nil, apphttp.BadRequestError(msg)
	}
	return payload, nil
}

// ExtractJSON returns the JSON object embedded in raw script output.
// The scripts may print warnings before the payload, so everything up
// to the first '{' is discarded.
func ExtractJSON(out []byte) ([]byte, bool) {
	i := strings.IndexByte(string(out), '{')
	if i < 0 {
		return nil, false
	}
	payload := out[i:]
	if !json.Valid(payload) {
		return nil, false
	}
	return payload, true
}

func scriptError(payload []byte) (string, bool) {
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return "", false
	}
	if probe.Error == "" {
		return "", false
	}
	return probe.Error, true
}

// NormalizeSymbol maps a bare asset name to its Binance trading pair.
// Symbols already carrying a quote suffix pass through unchanged.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return s
	}
	for _, suffix := range []string{"USDT", "USDC", "BUSD"} {
		if strings.HasSuffix(s, suffix) {
			return s
		}
	}
	if len(s) > 3 && (strings.HasSuffix(s, "BTC") || strings.HasSuffix(s, "ETH")) {
		return s
	}
	return s + "USDT"
}
