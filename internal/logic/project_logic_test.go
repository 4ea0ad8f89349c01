package logic

import (
	"context"
	"testing"
	"time"

	"github.com/bluecarbon/bcms/internal/apperr"
	"github.com/bluecarbon/bcms/internal/model"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectLogic(t *testing.T) (*ProjectLogic, store.Store) {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewProjectLogic(s), s
}

func validProject() *model.Project {
	return &model.Project{
		ProjectId:          "BC-001",
		ProjectName:        "Sundarbans belt",
		Latitude:           "21.9",
		Longitude:          "89.1",
		EcosystemType:      "mangrove",
		ImplementingAgency: "State Forest Dept",
		Ownership:          "community",
		AreaHectares:       42.5,
	}
}

func TestCreateProject(t *testing.T) {
	l, _ := newProjectLogic(t)

	project := validProject()
	require.NoError(t, l.CreateProject(context.Background(), project))
	assert.Equal(t, model.ProjectStatusDraft, project.Status)
	assert.False(t, project.CreatedAt.IsZero())
}

func TestCreateProjectValidation(t *testing.T) {
	l, s := newProjectLogic(t)
	ctx := context.Background()

	cases := []func(*model.Project){
		func(p *model.Project) { p.ProjectId = "" },
		func(p *model.Project) { p.ProjectName = "" },
		func(p *model.Project) { p.Latitude = "" },
		func(p *model.Project) { p.EcosystemType = "" },
		func(p *model.Project) { p.ImplementingAgency = "" },
	}
	for _, mutate := range cases {
		project := validProject()
		mutate(project)
		err := l.CreateProject(ctx, project)
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	}

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestSubmitProject(t *testing.T) {
	l, _ := newProjectLogic(t)
	ctx := context.Background()

	require.NoError(t, l.CreateProject(ctx, validProject()))

	submitted, err := l.SubmitProject(ctx, "BC-001")
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusSubmitted, submitted.Status)

	// 重复提交等价
	again, err := l.SubmitProject(ctx, "BC-001")
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusSubmitted, again.Status)
}

func TestSubmitProjectUnknownId(t *testing.T) {
	l, _ := newProjectLogic(t)

	_, err := l.SubmitProject(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetProjectsOrdering(t *testing.T) {
	l, s := newProjectLogic(t)
	ctx := context.Background()

	base := time.Now()
	for i, id := range []string{"p1", "p2", "p3"} {
		project := validProject()
		project.ProjectId = id
		project.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.CreateProject(ctx, project))
	}

	projects, err := l.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "p3", projects[0].ProjectId)
	assert.Equal(t, "p1", projects[2].ProjectId)
}
