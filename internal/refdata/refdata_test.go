package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDemand(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := writeTemp(t, "demand.csv", "Department,job_count\nIT,100\nLegal & Compliance,10\n")
		d, err := LoadDemand(path)
		require.NoError(t, err)
		assert.Equal(t, 100, d.Lookup("IT"))
		assert.Equal(t, 10, d.Lookup("Legal & Compliance"))
		assert.Zero(t, d.Lookup("Astrology"))
		assert.Equal(t, 100, d.MaxCount())
		assert.Equal(t, []string{"IT", "Legal & Compliance"}, d.TopFields(5))
		assert.Equal(t, []string{"IT"}, d.TopFields(1))
	})

	t.Run("embedded default", func(t *testing.T) {
		d, err := LoadDemand("")
		require.NoError(t, err)
		assert.Positive(t, d.MaxCount())
		assert.Positive(t, d.Lookup("Information Technology"))
		assert.Positive(t, d.Lookup("Legal & Compliance"))
	})

	t.Run("bad header", func(t *testing.T) {
		path := writeTemp(t, "demand.csv", "Dept,count\nIT,100\n")
		_, err := LoadDemand(path)
		assert.ErrorContains(t, err, "Department/job_count")
	})

	t.Run("bad count", func(t *testing.T) {
		path := writeTemp(t, "demand.csv", "Department,job_count\nIT,many\n")
		_, err := LoadDemand(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDemand("/nonexistent/demand.csv")
		assert.Error(t, err)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := writeTemp(t, "map.json", `{"IT":{"skills":["Software Development"],"programs":["Bachelor of Science in Computer Science"]}}`)
		c, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Software Development"}, c.SkillsFor("IT"))
		assert.Equal(t, []string{"Bachelor of Science in Computer Science"}, c.ProgramsFor("IT"))
		assert.Nil(t, c.SkillsFor("Astrology"))
	})

	t.Run("embedded default", func(t *testing.T) {
		c, err := LoadCatalog("")
		require.NoError(t, err)
		assert.NotEmpty(t, c.SkillsFor("IT"))
		assert.NotEmpty(t, c.ProgramsFor("Health Sciences"))
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTemp(t, "map.json", "{")
		_, err := LoadCatalog(path)
		assert.ErrorContains(t, err, "decode career map")
	})
}

func TestLoadRequirements(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := writeTemp(t, "reqs.json", `{
			"Computer Science": {"level":"Degree","min_mean_grade":"B-","required_subjects":{"Mathematics":"B"}},
			"Diploma in Information Technology": {"level":"Diploma","min_mean_grade":"C-","required_subjects":{"Mathematics":"D+"}}
		}`)
		rq, err := LoadRequirements(path)
		require.NoError(t, err)

		req, ok := rq.Lookup("Bachelor of Science in Computer Science")
		require.True(t, ok)
		assert.Equal(t, "Computer Science", req.Name)
		assert.Equal(t, schema.DegreeLevel, req.Level)
		assert.Equal(t, "B-", req.MinMeanGrade)

		// Match runs in the other direction too.
		req, ok = rq.Lookup("Diploma in Information Technology and Networking")
		require.True(t, ok)
		assert.Equal(t, schema.DiplomaLevel, req.Level)

		assert.Len(t, rq.All(), 2)
	})

	t.Run("missing level defaults to degree", func(t *testing.T) {
		path := writeTemp(t, "reqs.json", `{"Commerce": {"min_mean_grade":"C+","required_subjects":{}}}`)
		rq, err := LoadRequirements(path)
		require.NoError(t, err)
		req, ok := rq.Lookup("Commerce")
		require.True(t, ok)
		assert.Equal(t, schema.DegreeLevel, req.Level)
	})

	t.Run("embedded default", func(t *testing.T) {
		rq, err := LoadRequirements("")
		require.NoError(t, err)
		assert.NotEmpty(t, rq.All())
		_, ok := rq.Lookup("Bachelor of Laws")
		assert.True(t, ok)
	})

	t.Run("unknown program", func(t *testing.T) {
		rq, err := LoadRequirements("")
		require.NoError(t, err)
		_, ok := rq.Lookup("Bachelor of Astrology")
		assert.False(t, ok)
	})
}

func TestLoadJobs(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := writeTemp(t, "jobs.csv",
			"Job Title,Company,Department,Description\n"+
				"Backend Developer,Acme,IT,Build APIs\n"+
				"Data Engineer,Globex,IT,Pipelines\n"+
				"Nurse,City Hospital,Healthcare & Medical,Ward duty\n")
		j, err := LoadJobs(path)
		require.NoError(t, err)

		jobs := j.JobsFor("IT", 1)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Backend Developer", jobs[0].Title)
		assert.Equal(t, "Acme", jobs[0].Company)
		assert.Equal(t, "Build APIs", jobs[0].Description)

		assert.Len(t, j.JobsFor("IT", 10), 2)
		assert.Empty(t, j.JobsFor("Astrology", 3))
	})

	t.Run("it alias both ways", func(t *testing.T) {
		path := writeTemp(t, "jobs.csv", "Job Title,Company,Department\nBackend Developer,Acme,IT\n")
		j, err := LoadJobs(path)
		require.NoError(t, err)
		assert.Len(t, j.JobsFor("Information Technology", 3), 1)
	})

	t.Run("empty path is empty table", func(t *testing.T) {
		j, err := LoadJobs("")
		require.NoError(t, err)
		assert.Empty(t, j.JobsFor("IT", 3))
	})

	t.Run("bad header", func(t *testing.T) {
		path := writeTemp(t, "jobs.csv", "Title,Employer\nX,Y\n")
		_, err := LoadJobs(path)
		assert.ErrorContains(t, err, "Job Title/Department")
	})
}

func TestLoadTranscript(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := writeTemp(t, "transcript.json", `{"mean_grade":"B+","subjects":{"Mathematics":"A","Physics":"B"}}`)
		tr, err := LoadTranscript(path)
		require.NoError(t, err)
		assert.Equal(t, "B+", tr.MeanGrade)
		assert.Equal(t, "A", tr.Subjects["Mathematics"])
	})

	t.Run("empty path is nil", func(t *testing.T) {
		tr, err := LoadTranscript("")
		require.NoError(t, err)
		assert.Nil(t, tr)
	})

	t.Run("missing mean grade", func(t *testing.T) {
		path := writeTemp(t, "transcript.json", `{"subjects":{"Mathematics":"A"}}`)
		_, err := LoadTranscript(path)
		assert.ErrorContains(t, err, "mean_grade")
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTemp(t, "transcript.json", "not json")
		_, err := LoadTranscript(path)
		assert.Error(t, err)
	})
}
