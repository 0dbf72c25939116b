package usecase

import (
	"appointment-assistant/internal/classifier"
	"appointment-assistant/internal/contextstore"
	"appointment-assistant/internal/dialogue"
	"appointment-assistant/internal/dialogue/repository"
	"appointment-assistant/internal/extractor"
	"appointment-assistant/pkg/datemath"
	"appointment-assistant/pkg/gcalendar"
	pkgLog "appointment-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	classifier classifier.Classifier
	extractor  *extractor.Extractor
	contexts   *contextstore.Store
	normalizer *datemath.Parser
	repo       repository.AppointmentRepository
	oracle     dialogue.KnowledgeOracle
	calendar   *gcalendar.Client // optional, nil disables mirroring
	calendarID string            // "" targets the primary calendar
	timezone   string
	threshold  float64
}

// New creates the dialogue engine.
func New(
	l pkgLog.Logger,
	cls classifier.Classifier,
	ext *extractor.Extractor,
	contexts *contextstore.Store,
	normalizer *datemath.Parser,
	repo repository.AppointmentRepository,
	oracle dialogue.KnowledgeOracle,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
	confidenceThreshold float64,
) *implUseCase {
	if confidenceThreshold <= 0 {
		confidenceThreshold = classifier.DefaultConfidenceThreshold
	}
	return &implUseCase{
		l:          l,
		classifier: cls,
		extractor:  ext,
		contexts:   contexts,
		normalizer: normalizer,
		repo:       repo,
		oracle:     oracle,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		threshold:  confidenceThreshold,
	}
}
