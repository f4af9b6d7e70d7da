package handlers

import (
	"net/http"

	"github.com/caseshop/checkout-gateway/web"
)

func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, "static/index.html")
}

func (h *Handlers) HandleSuccess(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, "static/success.html")
}

func (h *Handlers) servePage(w http.ResponseWriter, path string) {
	body, err := web.Assets.ReadFile(path)
	if err != nil {
		h.logger.Error("missing embedded page", "path", path, "error", err)
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
