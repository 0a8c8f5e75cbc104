// Package menu answers with the lunch-perk menu of a restaurant.
package menu

import (
	"context"
	"fmt"

	"github.com/garyellow/winston-hrbot-go/internal/lex"
)

// Module constants
const (
	ModuleName     = "menu"
	IntentName     = "LunchPerkMenu"
	SlotRestaurant = "restaurant"
)

// Menus looks up the stored menu text of a restaurant.
type Menus interface {
	Menu(restaurant string) (string, bool)
}

// Handler serves LunchPerkMenu.
type Handler struct {
	menus Menus
}

// NewHandler creates a menu handler.
func NewHandler(menus Menus) *Handler {
	return &Handler{menus: menus}
}

// Intent returns the intent name.
func (h *Handler) Intent() string {
	return IntentName
}

// Fulfill replies with the stored menu, or says the restaurant is unknown.
func (h *Handler) Fulfill(_ context.Context, req *lex.IntentRequest) *lex.Response {
	restaurant := req.Slot(SlotRestaurant)
	if text, ok := h.menus.Menu(restaurant); ok && restaurant != "" {
		return lex.FulfillWithSuccess(req, text)
	}
	return lex.FulfillWithSuccess(req, fmt.Sprintf("Sorry, I'm not aware of the menu for %s", restaurant))
}
