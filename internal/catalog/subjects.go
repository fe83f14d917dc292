// Package catalog holds the static subject pool used in tutoring and quiz
// prompts. The pool is presentation data; the engine only needs the names.
package catalog

// Subject is one teachable subject.
type Subject struct {
	ID   string
	Name string
}

// Subjects is the fixed subject pool, in display order.
var Subjects = []Subject{
	{ID: "matematik", Name: "Matematik"},
	{ID: "fen", Name: "Fen Bilimleri"},
	{ID: "turkce", Name: "Türkçe"},
	{ID: "sosyal", Name: "Sosyal Bilgiler"},
	{ID: "ingilizce", Name: "İngilizce"},
	{ID: "genel", Name: "Genel Kültür"},
}

// Names returns the subject names for prompt construction.
func Names() []string {
	out := make([]string, len(Subjects))
	for i, s := range Subjects {
		out[i] = s.Name
	}
	return out
}

// ByID returns the subject with the given ID and whether it exists.
func ByID(id string) (Subject, bool) {
	for _, s := range Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}
