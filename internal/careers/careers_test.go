package careers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const careersHTML = `<html><body>
<nav><a href="/about">About us</a></nav>
<ul>
  <li><a href="/jobs/123">Senior Go   Engineer</a></li>
  <li><a href="https://boards.example.com/job/7">Site Reliability Engineer</a></li>
  <li><a href="/jobs/short">Intern</a></li>
</ul>
<div class="position-card">Staff Data Scientist, Remote</div>
</body></html>`

func TestParse(t *testing.T) {
	t.Parallel()

	postings, err := Parse(strings.NewReader(careersHTML), "acme corp", "https://acme.example/careers")
	require.NoError(t, err)
	require.Equal(t, 3, postings.Len())

	first := postings.Items[0]
	assert.Equal(t, "Senior Go Engineer", first.Title)
	assert.Equal(t, "https://acme.example/jobs/123", first.URL)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Acme Corp Careers", first.Source)

	assert.Equal(t, "https://boards.example.com/job/7", postings.Items[1].URL)

	position := postings.Items[2]
	assert.Equal(t, "Staff Data Scientist, Remote", position.Title)
	assert.Equal(t, "https://acme.example/careers", position.URL)
}

func TestParseCapsPerSelector(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 8; i++ {
		sb.WriteString(`<a href="/jobs/x">Backend Engineer Opening</a>`)
	}
	sb.WriteString("</body></html>")

	postings, err := Parse(strings.NewReader(sb.String()), "acme", "https://acme.example")
	require.NoError(t, err)
	assert.Equal(t, perSelector, postings.Len())
}

func TestCandidateURLs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"https://careers.bigco.com",
		"https://jobs.bigco.com",
		"https://bigco.com/careers",
		"https://bigco.com/jobs",
		"https://bigco.jobs",
	}, CandidateURLs("Big Co"))
}

func TestFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/careers" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(careersHTML))
	}))
	defer server.Close()

	client := New(zap.NewNop())

	postings, err := client.Fetch(context.Background(), Page{Company: "acme", URL: server.URL + "/careers"})
	require.NoError(t, err)
	assert.Equal(t, 3, postings.Len())
	assert.Equal(t, server.URL+"/jobs/123", postings.Items[0].URL)

	_, err = client.Fetch(context.Background(), Page{Company: "acme", URL: server.URL + "/missing"})
	assert.True(t, errors.Is(err, ErrNoPage))
}

func TestFetchCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Fetch(ctx, Page{Company: "acme", URL: "http://127.0.0.1:1/careers"})
	assert.ErrorIs(t, err, context.Canceled)
}
