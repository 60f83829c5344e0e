package scraper

import "markbookctl/pkg/markbook"

// MarkbookRef holds the identifiers the portal needs to return one course markbook
type MarkbookRef struct {
	StudentID int `json:"studentID"`
	ClassID   int `json:"classID"`
	TermID    int `json:"termID"`
	TopicID   int `json:"topicID"`
}

// Listing is one row of the portal's course table
type Listing struct {
	Course markbook.Course
	Ref    *MarkbookRef // nil when the course has no markbook link
}

// markbookRequest is the JSON body of the GetMarkbook endpoint
type markbookRequest struct {
	MarkbookRef
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	RelPath    string `json:"relPath"`
	StuLetters string `json:"stuLetters"`
	OrgID      int    `json:"orgID"`
}

// markbookResponse wraps the markbook HTML fragment the way ASP.NET page methods do
type markbookResponse struct {
	D string `json:"d"`
}
