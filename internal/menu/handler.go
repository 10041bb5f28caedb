package menu

import (
	"net/http"
	"strings"

	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/allergen"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service     *Service
	defaultMode Mode
}

func NewHandler(service *Service, defaultMode Mode) *Handler {
	return &Handler{service: service, defaultMode: defaultMode.normalized()}
}

// dishView is a dish as sent to the menu page, with allergen names resolved.
type dishView struct {
	Dish
	AllergenNames []string `json:"allergen_names"`
}

func viewOf(dishes []Dish) []dishView {
	out := make([]dishView, len(dishes))
	for i, d := range dishes {
		out[i] = dishView{Dish: d, AllergenNames: allergen.NamesOf(d.Allergens)}
	}
	return out
}

type filterResponse struct {
	Visible    []dishView `json:"visible"`
	Count      int        `json:"count"`
	CountLabel string     `json:"count_label"`
	Summary    string     `json:"summary"`
	ModeLabel  string     `json:"mode_label"`
	Selection  Selection  `json:"selection"`
}

func (h *Handler) respond(c *gin.Context, sel Selection) {
	res := h.service.Filter(sel)

	c.JSON(http.StatusOK, filterResponse{
		Visible:    viewOf(res.Visible),
		Count:      res.Count,
		CountLabel: res.CountLabel(),
		Summary:    res.Summary,
		ModeLabel:  sel.EffectiveMode().Label(),
		Selection:  sel,
	})
}

// --------------------------------------------------
// Full menu
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	dishes := h.service.Dishes()

	c.JSON(http.StatusOK, gin.H{
		"dishes": viewOf(dishes),
		"count":  len(dishes),
	})
}

// --------------------------------------------------
// Filter from query string
// GET /menu/filter?allergens=MI,GL&mode=contains&category=Mains&q=soup
// --------------------------------------------------
func (h *Handler) FilterQuery(c *gin.Context) {
	var codes []string
	for _, v := range c.QueryArray("allergens") {
		codes = append(codes, strings.Split(v, ",")...)
	}

	mode := h.defaultMode
	if m := c.Query("mode"); strings.TrimSpace(m) != "" {
		mode = ParseMode(m)
	}

	search := c.Query("q")
	if search == "" {
		search = c.Query("search")
	}

	sel := NewSelection(codes...).
		WithMode(mode).
		WithCategory(c.Query("category")).
		WithSearch(search)

	h.respond(c, sel)
}

// --------------------------------------------------
// Filter from JSON body
// --------------------------------------------------
func (h *Handler) FilterBody(c *gin.Context) {
	var sel Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter selection"})
		return
	}

	if sel.Mode == "" {
		sel = sel.WithMode(h.defaultMode)
	}

	h.respond(c, sel)
}

// --------------------------------------------------
// Allergen legend (chips)
// --------------------------------------------------
func (h *Handler) Allergens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"allergens": allergen.Legend(h.service.AllergenCodes()),
	})
}

// --------------------------------------------------
// Category chips
// --------------------------------------------------
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.service.Categories(),
	})
}
