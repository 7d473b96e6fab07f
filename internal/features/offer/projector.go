package offer

import (
	"slices"
	"strings"

	"go-fieldops/pkg/apperrors"

	"github.com/google/uuid"
)

// Project returns the client-facing view of raw: a stable sort by categoria,
// with a missing categoria sorting as "". raw is not modified. The view is
// derived on every read and write and never stored.
func Project(raw []Element) []Element {
	view := slices.Clone(raw)
	if view == nil {
		view = []Element{}
	}
	slices.SortStableFunc(view, func(a, b Element) int {
		return strings.Compare(sortKey(a), sortKey(b))
	})
	return view
}

func sortKey(e Element) string {
	if e.Categoria == nil {
		return ""
	}
	return *e.Categoria
}

// Resolve maps a position of the projected view back to a position in raw.
// Elements with an id are located by id. Elements without one fall back to the
// first raw element equal in every field, so for two identical legacy elements
// the earlier one in storage order is picked.
func Resolve(raw []Element, index int) (int, error) {
	if index < 0 || index >= len(raw) {
		return -1, apperrors.ErrInvalidIndex
	}
	target := Project(raw)[index]

	if target.ElementID != "" {
		return indexOfID(raw, target.ElementID)
	}
	for i := range raw {
		if sameValues(raw[i], target) {
			return i, nil
		}
	}
	return -1, apperrors.ErrElementNotFound
}

// indexOfID never matches an empty id, so legacy elements are only reachable
// through Resolve.
func indexOfID(raw []Element, id string) (int, error) {
	if id == "" {
		return -1, apperrors.ErrElementNotFound
	}
	for i := range raw {
		if raw[i].ElementID == id {
			return i, nil
		}
	}
	return -1, apperrors.ErrElementNotFound
}

func sameValues(a, b Element) bool {
	return a.ElementID == b.ElementID &&
		equalPtr(a.Categoria, b.Categoria) &&
		a.Descripcion == b.Descripcion &&
		a.Cantidad == b.Cantidad &&
		equalPtr(a.Foto, b.Foto)
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Append returns raw with e added at the end of storage order under a fresh
// element id.
func Append(raw []Element, e Element) ([]Element, Element) {
	e.ElementID = uuid.NewString()
	return append(slices.Clone(raw), e), e
}

// UpdateAt merges patch into the element shown at index of the projection.
// It returns the new raw list, in the same order, and the element before and
// after the change.
func UpdateAt(raw []Element, index int, patch ElementPatch) ([]Element, Element, Element, error) {
	pos, err := Resolve(raw, index)
	if err != nil {
		return nil, Element{}, Element{}, err
	}
	return updateRaw(raw, pos, patch)
}

// RemoveAt drops the element shown at index of the projection.
func RemoveAt(raw []Element, index int) ([]Element, Element, error) {
	pos, err := Resolve(raw, index)
	if err != nil {
		return nil, Element{}, err
	}
	return removeRaw(raw, pos)
}

func UpdateByID(raw []Element, id string, patch ElementPatch) ([]Element, Element, Element, error) {
	pos, err := indexOfID(raw, id)
	if err != nil {
		return nil, Element{}, Element{}, err
	}
	return updateRaw(raw, pos, patch)
}

func RemoveByID(raw []Element, id string) ([]Element, Element, error) {
	pos, err := indexOfID(raw, id)
	if err != nil {
		return nil, Element{}, err
	}
	return removeRaw(raw, pos)
}

func updateRaw(raw []Element, pos int, patch ElementPatch) ([]Element, Element, Element, error) {
	out := slices.Clone(raw)
	before := out[pos]
	after := before
	if patch.Categoria != nil {
		after.Categoria = patch.Categoria
	}
	if patch.Descripcion != nil {
		after.Descripcion = *patch.Descripcion
	}
	if patch.Cantidad != nil {
		after.Cantidad = *patch.Cantidad
	}
	if patch.Foto != nil {
		after.Foto = patch.Foto
	}
	out[pos] = after
	return out, before, after, nil
}

func removeRaw(raw []Element, pos int) ([]Element, Element, error) {
	removed := raw[pos]
	out := slices.Delete(slices.Clone(raw), pos, pos+1)
	return out, removed, nil
}
