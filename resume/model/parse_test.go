package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestFullPayload(t *testing.T) {
	body := []byte(`{
		"format": "PDF",
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "555-0100",
		"linkedin": "linkedin.com/in/ada",
		"summary": "Analyst.",
		"accentColor": "#336699",
		"workExperiences": [
			{"jobTitle": "Engineer", "company": "Analytical Engines", "location": "London",
			 "dateFrom": "1842", "dateTo": "1843", "isPresent": true, "jobDescription": "- Notes\n- Program"}
		],
		"educations": [{"degree": "Mathematics", "school": "Home", "dateFrom": "1830", "dateTo": "1835"}],
		"skills": ["Math", "Poetry"]
	}`)

	req, err := ParseRequest(body)
	require.NoError(t, err)

	assert.Equal(t, FormatPDF, req.Format)
	assert.Equal(t, "Ada Lovelace", req.Resume.Name)
	assert.Equal(t, "#336699", req.Resume.AccentColor)
	require.Len(t, req.Resume.WorkExperiences, 1)
	job := req.Resume.WorkExperiences[0]
	assert.Equal(t, "Engineer", job.JobTitle)
	assert.True(t, job.IsPresent)
	assert.Equal(t, Present, job.EndLabel())
	require.Len(t, req.Resume.Educations, 1)
	assert.Equal(t, "1835", req.Resume.Educations[0].EndLabel())
	assert.Equal(t, []string{"Math", "Poetry"}, req.Resume.Skills)
}

func TestParseRequestDefaults(t *testing.T) {
	for _, body := range []string{"", "   ", "{}", `{"format": null}`, `{"format": ""}`} {
		req, err := ParseRequest([]byte(body))
		require.NoError(t, err, "body %q", body)
		assert.Equal(t, FormatDOCX, req.Format)
		assert.Equal(t, ResumeInput{Skills: []string{}}, req.Resume)
	}
}

func TestParseRequestNullFieldsBecomeEmpty(t *testing.T) {
	req, err := ParseRequest([]byte(`{"name":null,"email":null,"workExperiences":[null,{"jobTitle":null}],"educations":null,"skills":null}`))
	require.NoError(t, err)

	assert.Equal(t, "", req.Resume.Name)
	assert.Equal(t, "", req.Resume.Email)
	require.Len(t, req.Resume.WorkExperiences, 2)
	assert.Equal(t, WorkExperience{}, req.Resume.WorkExperiences[0])
	assert.Equal(t, WorkExperience{}, req.Resume.WorkExperiences[1])
	assert.Empty(t, req.Resume.Educations)
	assert.Empty(t, req.Resume.Skills)
}

func TestParseRequestMalformedJSON(t *testing.T) {
	_, err := ParseRequest([]byte("{not json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestParseRequestStructuralViolations(t *testing.T) {
	cases := []string{
		`[]`,
		`"resume"`,
		`{"workExperiences": "Engineer"}`,
		`{"workExperiences": ["Engineer"]}`,
		`{"educations": {"degree": "BSc"}}`,
		`{"skills": {"go": true}}`,
		`{"format": 3}`,
	}
	for _, body := range cases {
		_, err := ParseRequest([]byte(body))
		require.Error(t, err, "body %s", body)
		assert.True(t, errors.Is(err, ErrInvalidInput), "body %s: %v", body, err)

		var verr *ValidationError
		assert.True(t, errors.As(err, &verr), "body %s", body)
	}
}

func TestParseRequestUnsupportedFormat(t *testing.T) {
	_, err := ParseRequest([]byte(`{"format":"odt"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), `"odt"`)
}

func TestParseRequestAccentColor(t *testing.T) {
	_, err := ParseRequest([]byte(`{"accentColor":"navy"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	req, err := ParseRequest([]byte(`{"accentColor":"#abc"}`))
	require.NoError(t, err)
	assert.Equal(t, "#abc", req.Resume.AccentColor)
}

func TestParseFormat(t *testing.T) {
	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, got)

	got, err = ParseFormat(" Pdf ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, got)

	_, err = ParseFormat("html")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
