package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"offerbuilder/services"
)

// HandleOfferSnapshot returns the current wizard state: step, lines,
// details and freshly computed totals.
func HandleOfferSnapshot() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}
		return e.JSON(http.StatusOK, session.Snapshot())
	}
}

// HandleToggleLine adds the posted catalog candidate to the selection, or
// removes it when already selected. The body carries the full candidate so
// toggling works without a server-side catalog round trip.
func HandleToggleLine() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}

		var item services.LineItem
		if err := e.BindBody(&item); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid line item payload"})
		}
		if item.ID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "line item id is required"})
		}

		session.Toggle(item)
		return e.JSON(http.StatusOK, session.Snapshot())
	}
}

// HandleUpdateLine applies a partial price/description/quantity override to
// one selected line.
func HandleUpdateLine() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}

		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing line id"})
		}

		var patch services.LinePatch
		if err := e.BindBody(&patch); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid patch payload"})
		}

		session.UpdateSelectionLine(id, patch)
		return e.JSON(http.StatusOK, session.Snapshot())
	}
}

// HandleIncrementLine raises a selected line's quantity by one.
func HandleIncrementLine() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}
		session.IncrementLine(e.Request.PathValue("id"))
		return e.JSON(http.StatusOK, session.Snapshot())
	}
}

// HandleDecrementLine lowers a selected line's quantity by one; the
// dedicated control never goes below 1.
func HandleDecrementLine() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}
		session.DecrementLine(e.Request.PathValue("id"))
		return e.JSON(http.StatusOK, session.Snapshot())
	}
}

// HandleClearLines empties the selection set.
func HandleClearLines() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}
		session.Clear()
		return e.JSON(http.StatusOK, session.Snapshot())
	}
}

// HandleDetailsPatch merges field-by-field edits into the offer details.
// Discount and tax arrive as raw strings and are sanitized at this
// boundary.
func HandleDetailsPatch() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}

		var patch services.DetailsPatch
		if err := e.BindBody(&patch); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid details payload"})
		}

		details := session.ApplyDetails(patch)
		return e.JSON(http.StatusOK, details)
	}
}

// HandleNextStep advances the wizard. No hard validation blocks the
// transition; proceeding with empty fields is allowed.
func HandleNextStep() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}
		session.Next()
		return e.JSON(http.StatusOK, session.Snapshot())
	}
}

// HandleBackStep moves the wizard one step back; backward transition is
// always allowed except from the first step.
func HandleBackStep() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}
		session.Back()
		return e.JSON(http.StatusOK, session.Snapshot())
	}
}

// HandleReviewUpdateLine edits a line in the review step's forked working
// copy. These edits never propagate back to the selection step.
func HandleReviewUpdateLine() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session := GetSession(e.Request)
		if session == nil {
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "no session"})
		}

		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing line id"})
		}

		var patch services.LinePatch
		if err := e.BindBody(&patch); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid patch payload"})
		}

		session.UpdateReviewLine(id, patch)
		return e.JSON(http.StatusOK, session.Snapshot())
	}
}
