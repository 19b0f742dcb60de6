package shoppinglist

import (
	"strings"
	"testing"
	"time"

	"github.com/iceadmin/foodgram/internal/database"
)

func TestRender(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)
	items := []database.GroceriesItem{
		{Name: "Картофель", MeasurementUnit: "г", Total: 500},
		{Name: "Соль", MeasurementUnit: "г", Total: 15},
	}

	got := Render("vasya", now, items)

	if !strings.HasPrefix(got, "vasya, Ваш список покупок на 2025-03-14\n\n\n") {
		t.Errorf("unexpected header: %q", got)
	}
	if !strings.Contains(got, "Картофель(г) — 500\n") {
		t.Errorf("missing first item line: %q", got)
	}
	if !strings.Contains(got, "Соль(г) — 15\n") {
		t.Errorf("missing second item line: %q", got)
	}
	if !strings.HasSuffix(got, footer) {
		t.Errorf("missing footer: %q", got)
	}
}

func TestRenderEmptyCart(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	got := Render("petya", now, nil)

	want := "petya, Ваш список покупок на 2025-01-01\n\n\n\n\n\n" + footer
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderOrderPreserved(t *testing.T) {
	now := time.Now()
	items := []database.GroceriesItem{
		{Name: "a", MeasurementUnit: "kg", Total: 1},
		{Name: "b", MeasurementUnit: "kg", Total: 2},
		{Name: "c", MeasurementUnit: "l", Total: 3},
	}

	got := Render("user", now, items)

	aIdx := strings.Index(got, "a(kg)")
	bIdx := strings.Index(got, "b(kg)")
	cIdx := strings.Index(got, "c(l)")
	if aIdx == -1 || bIdx == -1 || cIdx == -1 {
		t.Fatalf("missing item lines: %q", got)
	}
	if !(aIdx < bIdx && bIdx < cIdx) {
		t.Errorf("items out of order: %q", got)
	}
}
