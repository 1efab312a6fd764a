package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"markdown-task-calendar/internal/checklist"
	"markdown-task-calendar/internal/colorrule"
	"markdown-task-calendar/internal/model"
	"markdown-task-calendar/internal/schedule"
	"markdown-task-calendar/pkg/dateparser"
	"markdown-task-calendar/pkg/datemath"
	pkgLog "markdown-task-calendar/pkg/log"
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 10 * time.Minute
)

// Config carries the parsing and writing preferences of the use case.
type Config struct {
	Priority      []dateparser.DateFieldType // nil means dateparser.DefaultPriority
	Grammar       dateparser.Grammar
	DefaultFormat dateparser.Format // Format of lines created from a selection; must be readable under Grammar
	CalendarID    string            // Google calendar used by Publish
	CacheSize     int
	CacheTTL      time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	parser    *dateparser.Parser
	calendar  *datemath.Calendar
	checklist checklist.Service
	colors    *colorrule.Evaluator
	publisher schedule.Publisher
	cfg       Config
	// Parsed task lines keyed by raw text. Line number and section are
	// filled in per call.
	cache *expirable.LRU[string, cachedTask]
	now   func() time.Time
}

type cachedTask struct {
	task model.Task
	ok   bool
}

// New creates a new schedule UseCase. colors and publisher are optional.
func New(
	l pkgLog.Logger,
	parser *dateparser.Parser,
	calendar *datemath.Calendar,
	checklistSvc checklist.Service,
	colors *colorrule.Evaluator,
	publisher schedule.Publisher,
	cfg Config,
) *implUseCase {
	// Lines written in a format the grammar cannot read would lose their dates.
	if cfg.DefaultFormat == "" || !cfg.Grammar.Reads(cfg.DefaultFormat) {
		cfg.DefaultFormat = cfg.Grammar.DefaultFormat()
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	return &implUseCase{
		l:         l,
		parser:    parser,
		calendar:  calendar,
		checklist: checklistSvc,
		colors:    colors,
		publisher: publisher,
		cfg:       cfg,
		cache:     expirable.NewLRU[string, cachedTask](cfg.CacheSize, nil, cfg.CacheTTL),
		now:       time.Now,
	}
}
