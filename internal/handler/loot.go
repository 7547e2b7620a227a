package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tavernworks/lootsmith/internal/domain"
	"github.com/tavernworks/lootsmith/internal/logger"
	"github.com/tavernworks/lootsmith/internal/loot"
)

// Recent item window defaults.
const (
	recentCacheSize = 256
	recentCacheTTL  = 15 * time.Minute
)

// LootHandler serves item generation and registry views.
type LootHandler struct {
	service loot.Service
	recent  *recentCache
}

func NewLootHandler(service loot.Service) *LootHandler {
	return &LootHandler{
		service: service,
		recent:  newRecentCache(recentCacheSize, recentCacheTTL),
	}
}

// GenerateItemRequest is the body for the item generation endpoint. All
// fields beyond the table id are optional overrides.
type GenerateItemRequest struct {
	TableID      string `json:"table_id" validate:"required"`
	ItemLevel    *int   `json:"item_level,omitempty" validate:"omitempty,gt=0"`
	Rarity       string `json:"rarity,omitempty" validate:"omitempty,rarity"`
	MinModifiers *int   `json:"min_modifiers,omitempty" validate:"omitempty,gte=0"`
	MaxModifiers *int   `json:"max_modifiers,omitempty" validate:"omitempty,gte=0"`
	Seed         string `json:"seed,omitempty" validate:"omitempty,max=128"`
}

// HandleGenerateItem rolls one item from a registered loot table
// @Summary Generate an item
// @Description Rolls rarity, modifiers, stats, name and price from the named loot table
// @Tags loot
// @Accept json
// @Produce json
// @Param request body GenerateItemRequest true "Generation parameters"
// @Success 201 {object} domain.GeneratedItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/loot/generate [post]
func (h *LootHandler) HandleGenerateItem(w http.ResponseWriter, r *http.Request) {
	var req GenerateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate item"); err != nil {
		return
	}

	opts := domain.GenerateOptions{
		ItemLevel:    req.ItemLevel,
		MinModifiers: req.MinModifiers,
		MaxModifiers: req.MaxModifiers,
		Seed:         req.Seed,
	}
	if req.Rarity != "" {
		rarity, ok := domain.ParseRarity(strings.ToLower(req.Rarity))
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRarityArg)
			return
		}
		opts.ForcedRarity = &rarity
	}

	item, err := h.service.GenerateItem(r.Context(), req.TableID, opts)
	if err != nil {
		respondServiceError(w, r, "Generate item", err)
		return
	}

	h.recent.Add(item)
	respondJSON(w, http.StatusCreated, item)
}

// RecentItemsResponse wraps the recent-items list
type RecentItemsResponse struct {
	Items []*domain.GeneratedItem `json:"items"`
	Count int                     `json:"count"`
}

// HandleGetRecentItems returns recently generated items, newest first
// @Summary Recently generated items
// @Tags loot
// @Produce json
// @Param limit query int false "Maximum items to return (default 20, max 100)"
// @Success 200 {object} RecentItemsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/loot/recent [get]
func (h *LootHandler) HandleGetRecentItems(w http.ResponseWriter, r *http.Request) {
	limitStr := GetOptionalQueryParam(r, "limit", strconv.Itoa(DefaultRecentLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	items := h.recent.Items(limit)
	respondJSON(w, http.StatusOK, RecentItemsResponse{Items: items, Count: len(items)})
}

// TableSummary is the list-view projection of a loot table
type TableSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ItemLevel   int     `json:"item_level"`
	PrefixPools int     `json:"prefix_pools"`
	SuffixPools int     `json:"suffix_pools"`
	TotalChance float64 `json:"total_drop_chance"`
}

// TablesResponse wraps the table list
type TablesResponse struct {
	Tables []TableSummary `json:"tables"`
	Count  int            `json:"count"`
}

// HandleListTables returns summaries of every registered loot table
// @Summary List loot tables
// @Tags registry
// @Produce json
// @Success 200 {object} TablesResponse
// @Router /api/v1/tables [get]
func (h *LootHandler) HandleListTables(w http.ResponseWriter, r *http.Request) {
	tables := h.service.Tables()

	summaries := make([]TableSummary, 0, len(tables))
	for _, t := range tables {
		var total float64
		for _, chance := range t.DropChances {
			total += chance
		}
		summaries = append(summaries, TableSummary{
			ID:          t.ID,
			Name:        t.Name,
			ItemLevel:   t.ItemLevel,
			PrefixPools: len(t.PrefixPools),
			SuffixPools: len(t.SuffixPools),
			TotalChance: total,
		})
	}

	respondJSON(w, http.StatusOK, TablesResponse{Tables: summaries, Count: len(summaries)})
}

// HandleGetTable returns one full loot table definition
// @Summary Get a loot table
// @Tags registry
// @Produce json
// @Param id path string true "Loot table id"
// @Success 200 {object} domain.LootTable
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tables/{id} [get]
func (h *LootHandler) HandleGetTable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	table, ok := h.service.Table(id)
	if !ok {
		logger.FromContext(r.Context()).Warn("Loot table lookup miss", "table", id)
		respondError(w, http.StatusNotFound, ErrMsgTableNotFoundHTTP)
		return
	}

	respondJSON(w, http.StatusOK, table)
}

// HandleGetPool returns one modifier pool definition
// @Summary Get a modifier pool
// @Tags registry
// @Produce json
// @Param id path string true "Pool id"
// @Success 200 {object} domain.ModifierPool
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pools/{id} [get]
func (h *LootHandler) HandleGetPool(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pool, ok := h.service.Pool(id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgPoolNotFoundHTTP)
		return
	}

	respondJSON(w, http.StatusOK, pool)
}

// HandleGetModifier returns one modifier definition
// @Summary Get a modifier
// @Tags registry
// @Produce json
// @Param id path string true "Modifier id"
// @Success 200 {object} domain.ItemModifier
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/modifiers/{id} [get]
func (h *LootHandler) HandleGetModifier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	modifier, ok := h.service.Modifier(id)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgModNotFoundHTTP)
		return
	}

	respondJSON(w, http.StatusOK, modifier)
}
