package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Roadmap is the ordered set of learning modules returned for a skill.
type Roadmap struct {
	Skill   string   `json:"skill"`
	Modules []Module `json:"modules"`
}

// Module is a titled group of subtopics.
type Module struct {
	Title     string     `json:"title"`
	Subtopics []Subtopic `json:"subtopics"`
}

// Subtopic is a single learning unit with search queries per platform.
type Subtopic struct {
	Title     string    `json:"title"`
	Resources Resources `json:"resources"`
}

// Quiz is a single multiple-choice question. Answer is expected to equal
// one of Options; the client does not enforce it.
type Quiz struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Resource pairs a platform key with its search query.
type Resource struct {
	Platform string
	Query    string
}

// Resources holds the entries of a JSON "resources" object in document
// order. A repeated key keeps its first position and its last value.
type Resources []Resource

// Get returns the query for platform.
func (r Resources) Get(platform string) (string, bool) {
	for _, res := range r {
		if res.Platform == platform {
			return res.Query, true
		}
	}
	return "", false
}

func (r *Resources) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("resources: expected object, got %v", tok)
	}

	out := Resources{}
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("resources: unexpected key %v", keyTok)
		}

		var query string
		if err := dec.Decode(&query); err != nil {
			return fmt.Errorf("resources[%q]: %w", key, err)
		}

		if i, seen := index[key]; seen {
			out[i].Query = query
			continue
		}
		index[key] = len(out)
		out = append(out, Resource{Platform: key, Query: query})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}

func (r Resources) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, res := range r {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(res.Platform)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(res.Query)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
