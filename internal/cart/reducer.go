// Package cart implements the cart state machine: a pure reducer over a
// closed action set, and a Store that owns the state and persists it with a
// debounced write.
package cart

import (
	"encoding/json"

	"github.com/oakline/storefront/internal/currency"
	"github.com/oakline/storefront/internal/models"
)

// State is the full cart: active lines in insertion order, saved-for-later
// lines, and the two totals derived from the active lines. Saved lines never
// contribute to Subtotal or ItemCount.
type State struct {
	Lines      []models.CartLine `json:"lines"`
	SavedItems []models.CartLine `json:"savedItems"`
	Subtotal   currency.Money    `json:"subtotal"`
	ItemCount  int               `json:"itemCount"`
}

// InitialState returns an empty cart.
func InitialState() State {
	return State{
		Lines:      []models.CartLine{},
		SavedItems: []models.CartLine{},
	}
}

// Action is one of the closed set of cart transitions.
type Action interface {
	isCartAction()
}

type Add struct {
	Line models.CartLine // ID must already be set by the dispatcher
}

type Remove struct {
	LineID string
}

type UpdateQuantity struct {
	LineID   string
	Quantity int
}

type Clear struct{}

type Hydrate struct {
	State State
}

type SaveForLater struct {
	LineID string
}

type MoveToCart struct {
	LineID string
}

type RemoveSaved struct {
	LineID string
}

func (Add) isCartAction()            {}
func (Remove) isCartAction()         {}
func (UpdateQuantity) isCartAction() {}
func (Clear) isCartAction()          {}
func (Hydrate) isCartAction()        {}
func (SaveForLater) isCartAction()   {}
func (MoveToCart) isCartAction()     {}
func (RemoveSaved) isCartAction()    {}

// Reduce applies one action and returns the fully consistent next state. It
// never fails: unknown actions and unknown line ids leave the state as-is.
func Reduce(state State, action Action) State {

	switch a := action.(type) {

	case Add:
		idx := -1

		for i, line := range state.Lines {
			if line.ProductID == a.Line.ProductID && optionsKey(line.SelectedOptions) == optionsKey(a.Line.SelectedOptions) {
				idx = i

				break
			}
		}

		var newLines []models.CartLine

		if idx >= 0 {
			newLines = copyLines(state.Lines)
			newLines[idx].Quantity += a.Line.Quantity
		} else {
			newLines = append(copyLines(state.Lines), a.Line)
		}

		return withTotals(state, newLines)

	case Remove:
		return withTotals(state, deleteLine(state.Lines, a.LineID))

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, Remove{LineID: a.LineID})
		}

		newLines := copyLines(state.Lines)
		for i := range newLines {
			if newLines[i].ID == a.LineID {
				newLines[i].Quantity = a.Quantity
			}
		}

		return withTotals(state, newLines)

	case Clear:
		cleared := InitialState()
		cleared.SavedItems = state.SavedItems

		return cleared

	case Hydrate:
		return a.State

	case SaveForLater:
		line, ok := findLine(state.Lines, a.LineID)
		if !ok {
			return state
		}

		next := withTotals(state, deleteLine(state.Lines, a.LineID))
		next.SavedItems = append(copyLines(state.SavedItems), line)

		return next

	case MoveToCart:
		line, ok := findLine(state.SavedItems, a.LineID)
		if !ok {
			return state
		}

		next := withTotals(state, append(copyLines(state.Lines), line))
		next.SavedItems = deleteLine(state.SavedItems, a.LineID)

		return next

	case RemoveSaved:
		next := state
		next.SavedItems = deleteLine(state.SavedItems, a.LineID)

		return next

	default:
		return state
	}
}

// optionsKey canonicalizes a selected-options map into a stable string so
// two adds with the same choices merge even when map insertion order differs.
// encoding/json sorts map keys and escapes the strings, so two distinct maps
// can never produce the same key.
func optionsKey(options map[string]string) string {

	if len(options) == 0 {
		return ""
	}

	// A map[string]string always marshals.
	data, _ := json.Marshal(options)

	return string(data)
}

func withTotals(state State, lines []models.CartLine) State {

	var subtotal currency.Money

	itemCount := 0

	for _, line := range lines {
		subtotal += line.Price * currency.Money(line.Quantity)
		itemCount += line.Quantity
	}

	state.Lines = lines
	state.Subtotal = subtotal
	state.ItemCount = itemCount

	return state
}

func copyLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)

	return out
}

func deleteLine(lines []models.CartLine, id string) []models.CartLine {

	out := make([]models.CartLine, 0, len(lines))

	for _, line := range lines {
		if line.ID != id {
			out = append(out, line)
		}
	}

	return out
}

func findLine(lines []models.CartLine, id string) (models.CartLine, bool) {

	for _, line := range lines {
		if line.ID == id {
			return line, true
		}
	}

	return models.CartLine{}, false
}
