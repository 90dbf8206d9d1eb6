package domain

// Roster is a batch of records read from an import file.
type Roster struct {
	Name    string
	Records []Record
}

// LineIssue describes a save-file line the loader had to skip.
type LineIssue struct {
	Line int // 1-based, header is line 1
	Text string
	Err  error
}
