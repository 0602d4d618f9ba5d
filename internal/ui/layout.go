package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which form fields stack vertically.
	LayoutCompactWidth = 80

	// LayoutWideWidth is the width at which all destination cards fit on one row.
	LayoutWideWidth = 110
)

// Field sizing.
const (
	// FieldMinWidth is the narrowest a form field box is drawn.
	FieldMinWidth = 24

	// FieldMaxWidth is the widest a form field box is drawn.
	FieldMaxWidth = 40

	// CardWidth is the outer width of a destination card.
	CardWidth = 24
)
