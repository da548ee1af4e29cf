package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcesKeepDocumentOrder(t *testing.T) {
	var st Subtopic
	err := json.Unmarshal([]byte(`{"title":"T","resources":{"udemy":"u","youtube":"y","coursera":"c","articles":"a"}}`), &st)
	require.NoError(t, err)

	var order []string
	for _, r := range st.Resources {
		order = append(order, r.Platform)
	}
	assert.Equal(t, []string{"udemy", "youtube", "coursera", "articles"}, order)

	q, ok := st.Resources.Get("coursera")
	assert.True(t, ok)
	assert.Equal(t, "c", q)

	_, ok = st.Resources.Get("missing")
	assert.False(t, ok)
}

func TestResourcesDuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	var r Resources
	require.NoError(t, json.Unmarshal([]byte(`{"youtube":"one","udemy":"u","youtube":"two"}`), &r))
	assert.Equal(t, Resources{{"youtube", "two"}, {"udemy", "u"}}, r)
}

func TestResourcesNullAndMissing(t *testing.T) {
	var st Subtopic
	require.NoError(t, json.Unmarshal([]byte(`{"title":"T","resources":null}`), &st))
	assert.Empty(t, st.Resources)

	st = Subtopic{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"T"}`), &st))
	assert.Empty(t, st.Resources)
}

func TestResourcesRejectsNonObject(t *testing.T) {
	var r Resources
	assert.Error(t, json.Unmarshal([]byte(`["youtube"]`), &r))
}

func TestResourcesMarshalPreservesOrder(t *testing.T) {
	r := Resources{{"udemy", "a \"b\""}, {"youtube", "c"}}
	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"udemy":"a \"b\"","youtube":"c"}`, string(out))
}
