package graph

// Result is the outcome of one content operation. Exactly one of Err or the
// payload is meaningful: a Result with a nil Err is a success.
type Result struct {
	// Data is the decoded JSON body of the response.
	Data map[string]any

	// Photos holds one Result per uploaded photo, in upload order.
	// It is non-nil only for image posts.
	Photos []Result

	Err error
}

func failed(err error) Result {
	return Result{Err: err}
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// ID returns the id field of the response body, if any.
func (r Result) ID() string {
	if r.Err != nil || r.Data == nil {
		return ""
	}
	id, _ := r.Data["id"].(string)
	return id
}

// Map renders the result in its JSON-like form: a single "error" key on
// failure, a "photos" list for image posts, the response body otherwise.
func (r Result) Map() map[string]any {
	if r.Err != nil {
		return map[string]any{"error": r.Err.Error()}
	}
	if r.Photos != nil {
		photos := make([]any, len(r.Photos))
		for i, p := range r.Photos {
			photos[i] = p.Map()
		}
		return map[string]any{"photos": photos}
	}
	if r.Data == nil {
		return map[string]any{}
	}
	return r.Data
}
