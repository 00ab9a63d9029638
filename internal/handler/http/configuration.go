package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-dandelion/internal/config"
	"github.com/MKhiriev/go-dandelion/internal/logger"
	"github.com/MKhiriev/go-dandelion/models"
	"github.com/go-chi/chi/v5"
)

// getConfiguration writes every resolved option with its origin, in catalog
// order. A single option can be selected with the "key" query parameter.
func (h *Handler) getConfiguration(w http.ResponseWriter, r *http.Request) {
	options := config.Catalog()
	if key := r.URL.Query().Get("key"); key != "" {
		o, ok := config.LookupOption(key)
		if !ok {
			writeError(w, r, config.ErrUnknownOption)
			return
		}
		options = []config.Option{o}
	}

	writeJSON(w, r, http.StatusOK, NewConfigurationResponse(h.cfg, options))
}

// NewConfigurationResponse describes the given options of cfg with their
// resolved values and origins.
func NewConfigurationResponse(cfg *config.Configuration, options []config.Option) models.ConfigurationResponse {
	resp := models.ConfigurationResponse{
		RawProfile: cfg.ActiveRawProfile(),
		Profile:    cfg.ActiveProfile(),
		Options:    make([]models.OptionView, 0, len(options)),
	}
	for _, o := range options {
		value, _ := cfg.Value(o.Key)
		origin, _ := cfg.Origin(o.Key)
		resp.Options = append(resp.Options, models.OptionView{
			Key:    o.Key,
			Type:   o.Type.String(),
			Value:  value,
			Origin: origin,
		})
	}
	return resp
}

// redirectToAsset redirects to the location of the named asset as chosen by
// the configured resolution strategy.
func (h *Handler) redirectToAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	asu, err := h.assets.Get(name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	location, err := h.resolver.Resolve(asu, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, location, http.StatusFound)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Warn().Err(err).Int("status", status).Msg("request failed")
	http.Error(w, err.Error(), status)
}
