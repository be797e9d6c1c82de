package model

// StatusInProgress is the status every todo is created with. The field is
// mutable in the wire format, but no transition is exposed in this client.
const StatusInProgress = "in-progress"

// Todo is the domain model for a single task record. The ID is assigned by
// the remote store at creation and is never generated client-side.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Deadline    string `json:"date,omitempty"`
	Attachment  string `json:"image,omitempty"`
}

// Fields is the mutable field set sent on create and update. Update has
// full-replace semantics: a zero field clears the stored value, it does not
// preserve it.
type Fields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"date,omitempty"`
	Attachment  string `json:"image,omitempty"`
}

// HasAttachment reports whether the record carries an image reference.
func (t Todo) HasAttachment() bool { return t.Attachment != "" }
