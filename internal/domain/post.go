package domain

import "time"

// SegmentBudget is the fixed per-post character budget.
const SegmentBudget = 280

type Segment struct {
	Text     string
	MediaIDs []string
}

type PostPayload struct {
	Text     string
	MediaIDs []string
}

type PostResult struct {
	ID       string
	URL      string
	Text     string
	MediaIDs []string
}

type PostRecord struct {
	ID        string
	AccountID AccountID
	PostedAt  time.Time
	Posts     []PostResult
}

// Composition is either Immediate or Scheduled.
type Composition interface {
	composition()
	Target() AccountID
	Parts() []string
}

type Immediate struct {
	Segments  []string
	AccountID AccountID
}

type Scheduled struct {
	Segments  []string
	AccountID AccountID
	PostAt    time.Time
}

func (Immediate) composition() {}
func (Scheduled) composition() {}

func (c Immediate) Target() AccountID { return c.AccountID }
func (c Scheduled) Target() AccountID { return c.AccountID }

func (c Immediate) Parts() []string { return c.Segments }
func (c Scheduled) Parts() []string { return c.Segments }
