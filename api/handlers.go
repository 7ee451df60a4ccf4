package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/analysis"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/export"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/pkg/pipeline"
	"github.com/Raz-Bouganim/SocialNetwork-GameStopStock/service"
)

const summaryTopK = 10

// Handlers holds the HTTP endpoints over the analysis service.
type Handlers struct {
	analyses *service.AnalysisService
}

// NewHandlers creates the handler set.
func NewHandlers(analyses *service.AnalysisService) *Handlers {
	return &Handlers{analyses: analyses}
}

// submitRequest is the POST /analyses payload.
type submitRequest struct {
	NetworkSize int   `json:"network_size"`
	Seed        int64 `json:"seed"`
	TFTSteps    int   `json:"tft_steps"`
	KThreshold  int   `json:"k_threshold"`
}

// SubmitAnalysis starts a run (or serves a cached one).
func (h *Handlers) SubmitAnalysis(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	run, err := h.analyses.Submit(pipeline.Params{
		NetworkSize: req.NetworkSize,
		Seed:        req.Seed,
		TFTSteps:    req.TFTSteps,
		KThreshold:  req.KThreshold,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid parameters", err)
		return
	}
	writeSuccess(w, http.StatusAccepted, run)
}

// GetAnalysis returns run status.
func (h *Handlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	run, ok := h.analyses.Get(mux.Vars(r)["runId"])
	if !ok {
		writeError(w, http.StatusNotFound, "run not found", nil)
		return
	}
	writeSuccess(w, http.StatusOK, run)
}

// resultSummary is the serialized view of a completed run: scalars and
// rankings only, never the full graph.
type resultSummary struct {
	Params          pipeline.Params              `json:"params"`
	Stats           interface{}                  `json:"network_stats"`
	Density         float64                      `json:"density"`
	DensityLabel    string                       `json:"density_label"`
	Centralization  float64                      `json:"centralization"`
	CentralityLabel string                       `json:"centralization_label"`
	TopInfluencers  []analysis.Ranked            `json:"top_influencers"`
	TopBridges      []analysis.Ranked            `json:"top_bridges"`
	CascadeHistory  []float64                    `json:"cooperation_history"`
	Cascade         interface{}                  `json:"cascade"`
	Values          analysis.NetworkValues       `json:"network_values"`
	Communities     analysis.CommunityStats      `json:"communities"`
	MatrixInfo      interface{}                  `json:"matrix_info"`
	EchoChamber     interface{}                  `json:"echo_chamber"`
	ElapsedMS       int64                        `json:"elapsed_ms"`
}

// GetResult returns the completed run's summary.
func (h *Handlers) GetResult(w http.ResponseWriter, r *http.Request) {
	res, err := h.analyses.Result(mux.Vars(r)["runId"])
	if err != nil {
		writeError(w, http.StatusNotFound, "result not available", err)
		return
	}
	writeSuccess(w, http.StatusOK, resultSummary{
		Params:          res.Params,
		Stats:           res.Stats,
		Density:         res.Density,
		DensityLabel:    res.DensityLabel,
		Centralization:  res.Centralization,
		CentralityLabel: res.CentralizationLabel,
		TopInfluencers:  analysis.TopK(res.Centralities.InDegreeWeighted, summaryTopK),
		TopBridges:      analysis.TopK(res.Centralities.Betweenness, summaryTopK),
		CascadeHistory:  res.CascadeHistory,
		Cascade:         res.Cascade,
		Values:          res.Values,
		Communities:     res.Communities,
		MatrixInfo:      res.MatrixInfo,
		EchoChamber:     res.EchoChamber,
		ElapsedMS:       res.Elapsed.Milliseconds(),
	})
}

// ExportGEXF streams the interaction graph as GEXF.
func (h *Handlers) ExportGEXF(w http.ResponseWriter, r *http.Request) {
	res, err := h.analyses.Result(mux.Vars(r)["runId"])
	if err != nil {
		writeError(w, http.StatusNotFound, "result not available", err)
		return
	}
	w.Header().Set("Content-Type", "application/gexf+xml")
	w.Header().Set("Content-Disposition", `attachment; filename="gamestop_network.gexf"`)
	if err := export.WriteGEXF(w, res.Graph); err != nil {
		writeError(w, http.StatusInternalServerError, "export failed", err)
	}
}

// ExportInfluencers streams the top-influencer listing as CSV.
func (h *Handlers) ExportInfluencers(w http.ResponseWriter, r *http.Request) {
	h.exportRanked(w, r, "weighted_in_degree", "top_influencers.csv",
		func(res *pipeline.Result) map[string]float64 { return res.Centralities.InDegreeWeighted })
}

// ExportBridges streams the top-bridge listing as CSV.
func (h *Handlers) ExportBridges(w http.ResponseWriter, r *http.Request) {
	h.exportRanked(w, r, "betweenness", "top_bridges.csv",
		func(res *pipeline.Result) map[string]float64 { return res.Centralities.Betweenness })
}

func (h *Handlers) exportRanked(w http.ResponseWriter, r *http.Request, scoreHeader, filename string,
	pick func(*pipeline.Result) map[string]float64) {

	res, err := h.analyses.Result(mux.Vars(r)["runId"])
	if err != nil {
		writeError(w, http.StatusNotFound, "result not available", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteRankedCSV(w, scoreHeader, analysis.TopK(pick(res), summaryTopK)); err != nil {
		writeError(w, http.StatusInternalServerError, "export failed", err)
	}
}

// ExportCooperation streams the cooperation-by-day series as CSV.
func (h *Handlers) ExportCooperation(w http.ResponseWriter, r *http.Request) {
	res, err := h.analyses.Result(mux.Vars(r)["runId"])
	if err != nil {
		writeError(w, http.StatusNotFound, "result not available", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="tft_history.csv"`)
	if err := export.WriteCooperationCSV(w, res.CascadeHistory); err != nil {
		writeError(w, http.StatusInternalServerError, "export failed", err)
	}
}

// ExportMatrix streams the binary shared-content matrix dump.
func (h *Handlers) ExportMatrix(w http.ResponseWriter, r *http.Request) {
	res, err := h.analyses.Result(mux.Vars(r)["runId"])
	if err != nil {
		writeError(w, http.StatusNotFound, "result not available", err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="shared_posts_matrix.bin"`)
	if err := export.WriteMatrix(w, res.SharedMatrix); err != nil {
		writeError(w, http.StatusInternalServerError, "export failed", err)
	}
}

// HealthCheck reports liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "healthy"})
}
