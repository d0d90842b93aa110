// Package navbar holds the site navigation configuration and its endpoint
// pair. The config is a single process-wide record, mutex guarded.
package navbar

import "sync"

// PagesEnabled toggles each marketing page link in the navigation bar.
type PagesEnabled struct {
	FreeWebinars          bool `json:"freWebinars"`
	LiveEvents            bool `json:"liveEvents"`
	InstructorResources   bool `json:"instructorResources"`
	InstructorLedTraining bool `json:"instructorLedTraining"`
	OnDemandVideo         bool `json:"onDemandVideo"`
	CareerAssistance      bool `json:"careerAssistance"`
	ExamVoucher           bool `json:"examVoucher"`
}

// Config is the navigation bar configuration served to the client shell.
type Config struct {
	Position     string       `json:"position"`
	Visible      bool         `json:"visible"`
	PagesEnabled PagesEnabled `json:"pagesEnabled"`
	LogoText     string       `json:"logoText"`
	LogoURL      string       `json:"logoUrl,omitempty"`
}

// Patch is a partial update; nil fields are left untouched and the
// pagesEnabled block merges shallowly.
type Patch struct {
	Position     *string         `json:"position" validate:"omitempty,oneof=top side"`
	Visible      *bool           `json:"visible"`
	PagesEnabled map[string]bool `json:"pagesEnabled"`
	LogoText     *string         `json:"logoText"`
	LogoURL      *string         `json:"logoUrl"`
}

// Store guards the single navbar configuration record.
type Store struct {
	mu  sync.RWMutex
	cfg Config
}

// NewStore returns a store holding the default Skills Enhance navigation.
func NewStore() *Store {
	return &Store{cfg: Config{
		Position: "top",
		Visible:  true,
		PagesEnabled: PagesEnabled{
			FreeWebinars:          true,
			LiveEvents:            true,
			InstructorResources:   true,
			InstructorLedTraining: true,
			OnDemandVideo:         true,
			CareerAssistance:      true,
			ExamVoucher:           true,
		},
		LogoText: "Skills Enhance",
	}}
}

// Get returns the current configuration.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Apply merges a patch into the configuration and returns the result.
func (s *Store) Apply(p Patch) Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Position != nil {
		s.cfg.Position = *p.Position
	}
	if p.Visible != nil {
		s.cfg.Visible = *p.Visible
	}
	for page, enabled := range p.PagesEnabled {
		s.cfg.PagesEnabled.set(page, enabled)
	}
	if p.LogoText != nil && *p.LogoText != "" {
		s.cfg.LogoText = *p.LogoText
	}
	if p.LogoURL != nil {
		s.cfg.LogoURL = *p.LogoURL
	}
	return s.cfg
}

func (pe *PagesEnabled) set(page string, enabled bool) {
	switch page {
	case "freWebinars":
		pe.FreeWebinars = enabled
	case "liveEvents":
		pe.LiveEvents = enabled
	case "instructorResources":
		pe.InstructorResources = enabled
	case "instructorLedTraining":
		pe.InstructorLedTraining = enabled
	case "onDemandVideo":
		pe.OnDemandVideo = enabled
	case "careerAssistance":
		pe.CareerAssistance = enabled
	case "examVoucher":
		pe.ExamVoucher = enabled
	}
}
