package domain

// Category classifies what kind of activity a time interval was spent on.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryLearning Category = "learning"
	CategoryExercise Category = "exercise"
	CategoryHobby    Category = "hobby"
	CategoryLife     Category = "life"
	CategorySleep    Category = "sleep"
)

// AllCategories lists every category in declaration order. Aggregation
// uses this order to break ties between groups with equal minutes.
var AllCategories = []Category{
	CategoryWork,
	CategoryLearning,
	CategoryExercise,
	CategoryHobby,
	CategoryLife,
	CategorySleep,
}

// CategoryMeta carries the fixed display metadata for a category.
type CategoryMeta struct {
	Label string
	Icon  string
	Color string
}

var categoryMeta = map[Category]CategoryMeta{
	CategoryWork:     {Label: "Work", Icon: "◆", Color: "blue"},
	CategoryLearning: {Label: "Learning", Icon: "✎", Color: "green"},
	CategoryExercise: {Label: "Exercise", Icon: "➤", Color: "orange"},
	CategoryHobby:    {Label: "Hobby", Icon: "♠", Color: "purple"},
	CategoryLife:     {Label: "Life", Icon: "⌂", Color: "gray"},
	CategorySleep:    {Label: "Sleep", Icon: "☾", Color: "indigo"},
}

// Meta returns the display metadata for the category. Unknown values
// fall back to the CategoryLife metadata, mirroring ParseCategory.
func (c Category) Meta() CategoryMeta {
	if m, ok := categoryMeta[c]; ok {
		return m
	}
	return categoryMeta[CategoryLife]
}

func (c Category) Label() string { return c.Meta().Label }
func (c Category) Icon() string  { return c.Meta().Icon }
func (c Category) Color() string { return c.Meta().Color }

// DeclIndex returns the category's position in declaration order.
// Unknown values sort after all known categories.
func (c Category) DeclIndex() int {
	for i, cat := range AllCategories {
		if cat == c {
			return i
		}
	}
	return len(AllCategories)
}

// ParseCategory decodes a storage key into a Category. An unrecognized
// key decodes to CategoryLife; stored data never fails to load because
// a key fell out of the enum.
func ParseCategory(key string) Category {
	for _, c := range AllCategories {
		if string(c) == key {
			return c
		}
	}
	return CategoryLife
}

// Priority places an activity in the importance/urgency matrix.
type Priority string

const (
	PriorityImportantUrgent       Priority = "important_urgent"
	PriorityImportantNotUrgent    Priority = "important_not_urgent"
	PriorityNotImportantUrgent    Priority = "not_important_urgent"
	PriorityNotImportantNotUrgent Priority = "not_important_not_urgent"
)

// AllPriorities lists the four quadrants in quadrant-number order.
var AllPriorities = []Priority{
	PriorityImportantUrgent,
	PriorityImportantNotUrgent,
	PriorityNotImportantUrgent,
	PriorityNotImportantNotUrgent,
}

// PriorityMeta carries the fixed display metadata for a quadrant.
type PriorityMeta struct {
	Quadrant   int
	Label      string
	ShortLabel string
	Color      string
}

var priorityMeta = map[Priority]PriorityMeta{
	PriorityImportantUrgent:       {Quadrant: 1, Label: "Important & Urgent", ShortLabel: "Do Now", Color: "red"},
	PriorityImportantNotUrgent:    {Quadrant: 2, Label: "Important, Not Urgent", ShortLabel: "Plan", Color: "green"},
	PriorityNotImportantUrgent:    {Quadrant: 3, Label: "Not Important, Urgent", ShortLabel: "Delegate", Color: "yellow"},
	PriorityNotImportantNotUrgent: {Quadrant: 4, Label: "Not Important, Not Urgent", ShortLabel: "Eliminate", Color: "gray"},
}

// Meta returns the display metadata for the priority. Unknown values
// fall back to quadrant 4, mirroring ParsePriority.
func (p Priority) Meta() PriorityMeta {
	if m, ok := priorityMeta[p]; ok {
		return m
	}
	return priorityMeta[PriorityNotImportantNotUrgent]
}

func (p Priority) Quadrant() int      { return p.Meta().Quadrant }
func (p Priority) Label() string      { return p.Meta().Label }
func (p Priority) ShortLabel() string { return p.Meta().ShortLabel }
func (p Priority) Color() string      { return p.Meta().Color }

// ParsePriority decodes a storage key into a Priority. Unrecognized
// keys decode to PriorityNotImportantNotUrgent.
func ParsePriority(key string) Priority {
	for _, p := range AllPriorities {
		if string(p) == key {
			return p
		}
	}
	return PriorityNotImportantNotUrgent
}

// PriorityForQuadrant returns the priority with the given quadrant
// number (1–4). Out-of-range numbers map to quadrant 4.
func PriorityForQuadrant(n int) Priority {
	for _, p := range AllPriorities {
		if p.Quadrant() == n {
			return p
		}
	}
	return PriorityNotImportantNotUrgent
}
