package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	appmiddleware "github.com/prospecta/prospecta-api/internal/infra/http/middleware"
	"github.com/prospecta/prospecta-api/internal/usecase"
)

type GenerateLeadsHandler struct {
	GenerateUC  *usecase.GenerateLeadsUseCase
	rateLimiter *RateLimiter
}

func NewGenerateLeadsHandler(uc *usecase.GenerateLeadsUseCase) *GenerateLeadsHandler {
	return &GenerateLeadsHandler{
		GenerateUC:  uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP — cada run custa até 11 chamadas externas
	}
}

func (h *GenerateLeadsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeError(w, http.StatusTooManyRequests, "Muitas requisições. Tente novamente em instantes.")
		return
	}

	var input usecase.GenerateLeadsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	output, err := h.GenerateUC.Execute(ctx, input)
	if err != nil {
		status, message := statusForError(err)
		if status >= 500 {
			appmiddleware.RecordGenerationRun("error")
			appmiddleware.RecordIntegrationError("pipeline")
		}
		writeError(w, status, message)
		return
	}

	appmiddleware.RecordGenerationRun("success")
	appmiddleware.RecordLeadsGenerated(output.LeadsCreated)

	writeJSON(w, http.StatusOK, output)
}

func getClientIP(r *http.Request) string {

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
