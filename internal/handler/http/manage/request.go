package manage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

var errMalformedBody = errors.New("invalid request body")

// maxMemory bounds multipart form parsing; the forms here have one text field.
const maxMemory = 32 << 10

// formField reads one field from a JSON or URL-encoded body.
// present is false when the body does not mention the field at all.
func formField(r *http.Request, name string) (value string, present bool, err error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		parse := r.ParseForm
		if mediaType == "multipart/form-data" {
			parse = func() error { return r.ParseMultipartForm(maxMemory) }
		}
		if err := parse(); err != nil {
			return "", false, fmt.Errorf("%w: %w", errMalformedBody, err)
		}
		return r.PostForm.Get(name), r.PostForm.Has(name), nil
	}

	var body map[string]*string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	v, ok := body[name]
	if !ok || v == nil {
		return "", false, nil
	}
	return *v, true, nil
}
