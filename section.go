package logbook

// Headings of the sections of a logbook file, in the order they appear.
const (
	SectionToday     = "TODAY"
	SectionWeek      = "THIS WEEK"
	SectionMonth     = "THIS MONTH"
	SectionQuarter   = "THIS QUARTER"
	SectionYear      = "THIS YEAR"
	SectionCompleted = "COMPLETED"
	SectionDropped   = "DROPPED"
)

// Section describes one heading of a logbook file. The first five sections are
// horizons: a task under THIS WEEK is meant to be done within the week, and stays
// there across rollovers until its horizon expires. COMPLETED and DROPPED are
// terminal; their tasks are never carried over.
type Section struct {
	Heading  string
	Horizon  Period // meaningful only when Terminal is false
	Terminal bool
	Last     string // how the review prompt refers to the previous period, e.g. "yesterday"
}

// Sections lists every section in file order.
func Sections() []Section {
	return []Section{
		{Heading: SectionToday, Horizon: Day, Last: "yesterday"},
		{Heading: SectionWeek, Horizon: Week, Last: "last week"},
		{Heading: SectionMonth, Horizon: Month, Last: "last month"},
		{Heading: SectionQuarter, Horizon: Quarter, Last: "last quarter"},
		{Heading: SectionYear, Horizon: Year, Last: "last year"},
		{Heading: SectionCompleted, Terminal: true},
		{Heading: SectionDropped, Terminal: true},
	}
}
