package views

import (
	"bytes"
	"context"
	"math"
	"net/url"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaunghar/admin-console/components/layout"
	"github.com/gaunghar/admin-console/pkg/composables"
	"github.com/gaunghar/admin-console/pkg/session"
)

type greetingProps struct {
	Notice
	Name string
}

func testSet(t *testing.T) *Set {
	t.Helper()
	pages := fstest.MapFS{
		"greeting.html": {Data: []byte(`{{define "content"}}<p id="hello">Hello {{.Props.Name}}</p>{{end}}{{define "row"}}<span>{{.Props.Name}}</span>{{end}}`)},
	}
	set, err := Parse(layout.FS, pages, "*.html")
	require.NoError(t, err)
	return set
}

func TestSet_PageEscapesAndWrapsLayout(t *testing.T) {
	set := testSet(t)
	buf := &bytes.Buffer{}
	props := &greetingProps{Name: "<b>Ram</b>", Notice: Notice{Success: "Saved"}}

	require.NoError(t, set.Page("greeting", "Greeting", props).Render(context.Background(), buf))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Hello &lt;b&gt;Ram&lt;/b&gt;")
	assert.Contains(t, out, "Saved")
	assert.NotContains(t, out, "sidebar")
}

func TestSet_PageShowsSidebarForSession(t *testing.T) {
	set := testSet(t)
	buf := &bytes.Buffer{}
	ctx := composables.WithSession(context.Background(), &session.Session{UserID: "1", Profile: session.Profile{FirstName: "Sita"}})

	require.NoError(t, set.Page("greeting", "Greeting", &greetingProps{Name: "Ram"}).Render(ctx, buf))
	assert.Contains(t, buf.String(), "sidebar")
	assert.Contains(t, buf.String(), "Sita")
}

func TestSet_Fragment(t *testing.T) {
	set := testSet(t)
	buf := &bytes.Buffer{}
	require.NoError(t, set.Fragment("greeting", "row", &greetingProps{Name: "Ram"}).Render(context.Background(), buf))
	assert.Equal(t, "<span>Ram</span>", buf.String())
}

func TestPagination(t *testing.T) {
	p := Pagination{Page: 1, PageSize: 10, Total: 25, Path: "/tole", Query: url.Values{"q": {"ram"}}}
	assert.Equal(t, 11, p.From())
	assert.Equal(t, 20, p.To())
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, "/tole?page=2&q=ram&size=10", p.NextURL())

	last := Pagination{Page: 2, PageSize: 10, Total: 25}
	assert.Equal(t, 25, last.To())
	assert.False(t, last.HasNext())

	past := Pagination{Page: math.MaxInt/3 + 1, PageSize: 3, Total: 4}
	assert.Equal(t, 4, past.From())
	assert.Equal(t, 4, past.To())
	assert.False(t, past.HasNext())
	assert.True(t, past.HasPrev())
}
