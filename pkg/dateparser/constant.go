package dateparser

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02T15:04"

	// variationSelector may follow an emoji symbol (U+FE0F).
	variationSelector = `\x{FE0F}?`
	datePattern       = `(\d{4}-\d{2}-\d{2})`
	clockPattern      = `((?:[01]?\d|2[0-3]):[0-5]\d)`
)

// DefaultPriority is the order used to pick a primary date when none is configured.
var DefaultPriority = []DateFieldType{
	TypeDue,
	TypeScheduled,
	TypeStart,
	TypeCreated,
	TypeDone,
	TypeCancelled,
}

// CanonicalOrder is the order date fields are written back onto a line.
var CanonicalOrder = []DateFieldType{
	TypeStart,
	TypeScheduled,
	TypeDue,
	TypeCreated,
	TypeDone,
	TypeCancelled,
}

// typeSymbols lists the emoji recognized per type. The first entry is the one written out.
var typeSymbols = map[DateFieldType][]string{
	TypeDue:       {"📅", "📆", "🗓"},
	TypeScheduled: {"⏳", "⌛"},
	TypeStart:     {"🛫"},
	TypeCreated:   {"➕"},
	TypeDone:      {"✅"},
	TypeCancelled: {"❌"},
}

// keyAliases maps normalized inline-field keys to their type.
var keyAliases = map[string]DateFieldType{
	"due":             TypeDue,
	"due date":        TypeDue,
	"duedate":         TypeDue,
	"start":           TypeStart,
	"start date":      TypeStart,
	"startdate":       TypeStart,
	"scheduled":       TypeScheduled,
	"scheduled date":  TypeScheduled,
	"scheduleddate":   TypeScheduled,
	"created":         TypeCreated,
	"created date":    TypeCreated,
	"createddate":     TypeCreated,
	"done":            TypeDone,
	"done date":       TypeDone,
	"donedate":        TypeDone,
	"completed":       TypeDone,
	"completed date":  TypeDone,
	"completeddate":   TypeDone,
	"completion":      TypeDone,
	"completion date": TypeDone,
	"completiondate":  TypeDone,
	"cancelled":       TypeCancelled,
	"cancelled date":  TypeCancelled,
	"cancelleddate":   TypeCancelled,
	"canceled":        TypeCancelled,
	"canceled date":   TypeCancelled,
	"canceleddate":    TypeCancelled,
}
