package services

import (
	"sync"
	"time"
)

// Step is one of the three linear wizard states.
type Step int

const (
	StepSelect Step = iota + 1
	StepDetails
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepSelect:
		return "select"
	case StepDetails:
		return "details"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// ExportStatus is the transient outcome flag of the last document export.
type ExportStatus string

const (
	StatusIdle    ExportStatus = "idle"
	StatusSuccess ExportStatus = "success"
	StatusError   ExportStatus = "error"
)

// StatusDisplayWindow is how long a non-idle export status stays visible
// before it self-clears.
const StatusDisplayWindow = 3 * time.Second

// DetailsPatch is a partial OfferDetails update; nil fields are untouched.
// Discount and Tax arrive as raw strings and are sanitized here, at the edit
// boundary, so ComputeTotals never sees a negative percentage.
type DetailsPatch struct {
	ClientName      *string    `json:"clientName,omitempty"`
	ClientEmail     *string    `json:"clientEmail,omitempty"`
	OfferName       *string    `json:"offerName,omitempty"`
	ExpirationDate  *time.Time `json:"expirationDate,omitempty"`
	ClearExpiration bool       `json:"clearExpiration,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Discount        *string    `json:"discount,omitempty"`
	Tax             *string    `json:"tax,omitempty"`
}

// Session is one user's in-flight offer: wizard step, the selection set, the
// detail record and, once the review step is entered, a forked working copy
// of the lines. Sessions live in memory only and die with the process;
// nothing is saved server-side.
type Session struct {
	mu sync.Mutex

	step      Step
	selection []LineItem
	details   OfferDetails
	review    []LineItem

	candidateSheet string
	candidates     []LineItem

	status      ExportStatus
	statusTimer *time.Timer
	closed      bool

	// Loader guards catalog sheet loads for this session against
	// out-of-order completion.
	Loader SheetLoader
}

// NewSession starts a wizard session at the selection step.
func NewSession() *Session {
	return &Session{
		step:   StepSelect,
		status: StatusIdle,
	}
}

// Snapshot is a read-only view of the session for the HTTP boundary.
type Snapshot struct {
	Step      string       `json:"step"`
	Lines     []LineItem   `json:"lines"`
	Details   OfferDetails `json:"details"`
	Totals    Totals       `json:"totals"`
	Status    ExportStatus `json:"exportStatus"`
	InReview  bool         `json:"inReview"`
	LineCount int          `json:"lineCount"`
}

// Snapshot returns the current wizard state with freshly derived totals.
// In the review step the totals come from the forked working copy.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.selection
	inReview := s.step == StepReview && s.review != nil
	if inReview {
		lines = s.review
	}
	if lines == nil {
		lines = []LineItem{}
	}
	return Snapshot{
		Step:      s.step.String(),
		Lines:     lines,
		Details:   s.details,
		Totals:    ComputeTotals(lines, float64(s.details.Discount), float64(s.details.Tax)),
		Status:    s.status,
		InReview:  inReview,
		LineCount: len(lines),
	}
}

// Selection returns the current selection set.
func (s *Session) Selection() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// Toggle adds or removes the given catalog candidate from the selection.
func (s *Session) Toggle(item LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = Toggle(s.selection, item)
}

// UpdateSelectionLine patches a line in the selection set.
func (s *Session) UpdateSelectionLine(id string, patch LinePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = UpdateLine(s.selection, id, patch)
}

// IncrementLine raises a selected line's quantity by one.
func (s *Session) IncrementLine(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = IncrementQty(s.selection, id)
}

// DecrementLine lowers a selected line's quantity by one, clamped at 1.
func (s *Session) DecrementLine(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = DecrementQty(s.selection, id)
}

// Clear empties the selection set.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = ClearSelections()
}

// SetCandidates replaces the cached candidate list for the given sheet.
// Callers commit through the Loader first, so a stale fetch never lands
// here.
func (s *Session) SetCandidates(sheet string, items []LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidateSheet = sheet
	s.candidates = items
}

// Candidates returns the cached candidate sheet and its items.
func (s *Session) Candidates() (string, []LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.candidateSheet, s.candidates
}

// ApplyDetails merges a field-by-field detail edit into the session.
func (s *Session) ApplyDetails(patch DetailsPatch) OfferDetails {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.ClientName != nil {
		s.details.ClientName = *patch.ClientName
	}
	if patch.ClientEmail != nil {
		s.details.ClientEmail = *patch.ClientEmail
	}
	if patch.OfferName != nil {
		s.details.OfferName = *patch.OfferName
	}
	if patch.ExpirationDate != nil {
		t := *patch.ExpirationDate
		s.details.ExpirationDate = &t
	}
	if patch.ClearExpiration {
		s.details.ExpirationDate = nil
	}
	if patch.Notes != nil {
		s.details.Notes = *patch.Notes
	}
	if patch.Discount != nil {
		s.details.Discount = SanitizePercent(*patch.Discount)
	}
	if patch.Tax != nil {
		s.details.Tax = SanitizePercent(*patch.Tax)
	}
	return s.details
}

// Details returns the current detail record.
func (s *Session) Details() OfferDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details
}

// Next advances the wizard one step, stopping at review. Entering the
// review step forks a working copy of the selection: review edits never
// propagate back to the selection step's state.
func (s *Session) Next() Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.step {
	case StepSelect:
		s.step = StepDetails
	case StepDetails:
		s.step = StepReview
		s.review = make([]LineItem, len(s.selection))
		copy(s.review, s.selection)
	}
	return s.step
}

// Back moves the wizard one step back, stopping at the first step. Leaving
// review discards the forked working copy.
func (s *Session) Back() Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.step {
	case StepReview:
		s.step = StepDetails
		s.review = nil
	case StepDetails:
		s.step = StepSelect
	}
	return s.step
}

// Step returns the current wizard step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// UpdateReviewLine patches a line in the review working copy. It is a no-op
// outside the review step.
func (s *Session) UpdateReviewLine(id string, patch LinePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.review == nil {
		return
	}
	s.review = UpdateLine(s.review, id, patch)
}

// ExportLines returns the lines a document export should use: the review
// working copy when review has been entered, the selection otherwise.
func (s *Session) ExportLines() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == StepReview && s.review != nil {
		return s.review
	}
	return s.selection
}

// SetExportStatus flips the transient export status and arms a timer that
// resets it to idle after StatusDisplayWindow. An earlier pending reset is
// cancelled first.
func (s *Session) SetExportStatus(status ExportStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.status = status
	if s.statusTimer != nil {
		s.statusTimer.Stop()
		s.statusTimer = nil
	}
	if status == StatusIdle {
		return
	}
	s.statusTimer = time.AfterFunc(StatusDisplayWindow, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.status = StatusIdle
		}
	})
}

// ExportStatus returns the current transient status flag.
func (s *Session) ExportStatus() ExportStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Close tears the session down, cancelling any pending status reset.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.statusTimer != nil {
		s.statusTimer.Stop()
		s.statusTimer = nil
	}
}
