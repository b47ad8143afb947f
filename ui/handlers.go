package ui

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"tunnelstats/app"
	"tunnelstats/domain/core"
)

const maxUploadBytes = 32 << 20

// handleHealth reports liveness.
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze accepts a multipart spreadsheet upload plus session
// parameters, runs the pipeline and returns the full analysis result.
// Without an upload the configured default dataset is used.
func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqID := core.RequestID(core.NewID())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	path, cleanup, err := a.resolveDataset(r)
	if err != nil {
		log.Printf("[handleAnalyze] request=%s dataset resolution failed: %v", reqID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	raw, err := a.reader.ReadTable(path)
	if err != nil {
		log.Printf("[handleAnalyze] request=%s read failed: %v", reqID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	analysisReq, err := parseAnalysisRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.Analyze(raw, analysisReq)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsStructuralError(err) {
			status = http.StatusUnprocessableEntity
		}
		log.Printf("[handleAnalyze] request=%s analysis failed: %v", reqID, err)
		writeError(w, status, err.Error())
		return
	}

	log.Printf("[handleAnalyze] request=%s dataset=%s rows=%d", reqID, result.DatasetID, result.RowCount)
	writeJSON(w, http.StatusOK, result)
}

// handleReport runs the pipeline against the configured default dataset and
// returns only the ASCII report lines, for external document writers.
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	if a.defaultFile == "" {
		writeError(w, http.StatusNotFound, "no default dataset configured")
		return
	}

	raw, err := a.reader.ReadTable(a.defaultFile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	analysisReq, err := analysisRequestFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.Analyze(raw, analysisReq)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsStructuralError(err) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"range_low":   result.RangeLow,
		"range_high":  result.RangeHigh,
		"x_axis":      result.XAxis,
		"y_axis":      result.YAxis,
		"correlation": result.Correlation,
		"top_pairs":   result.TopPairs,
		"lines":       result.ReportLines,
	})
}

// resolveDataset returns the path of the uploaded spreadsheet, falling back
// to the configured default file. cleanup removes any temporary copy.
func (a *App) resolveDataset(r *http.Request) (string, func(), error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if a.defaultFile != "" {
			return a.defaultFile, func() {}, nil
		}
		return "", nil, err
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, err
	}

	path := tmp.Name()
	return path, func() { os.Remove(path) }, nil
}

func parseAnalysisRequest(r *http.Request) (app.AnalysisRequest, error) {
	return buildAnalysisRequest(r.FormValue)
}

func analysisRequestFromQuery(r *http.Request) (app.AnalysisRequest, error) {
	q := r.URL.Query()
	return buildAnalysisRequest(q.Get)
}

func buildAnalysisRequest(get func(string) string) (app.AnalysisRequest, error) {
	req := app.AnalysisRequest{
		XAxis: get("x_axis"),
		YAxis: get("y_axis"),
		ZAxis: get("z_axis"),
	}

	if v := get("min_chainage"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, errInvalidParam("min_chainage", v)
		}
		req.RangeLow = &f
	}
	if v := get("max_chainage"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, errInvalidParam("max_chainage", v)
		}
		req.RangeHigh = &f
	}
	if v := get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return req, errInvalidParam("top", v)
		}
		req.TopN = n
	}
	return req, nil
}

type paramError struct {
	name, value string
}

func (e paramError) Error() string {
	return "invalid parameter " + e.name + ": " + e.value
}

func errInvalidParam(name, value string) error {
	return paramError{name: name, value: value}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Marshal before touching the ResponseWriter so an encode failure can
	// still produce an error status instead of a truncated 200.
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[ui] JSON encode failed: %v", err)
		body = []byte(`{"error":"failed to encode response"}`)
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
