package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalProfile = `
name: Jane Doe
title: Engineer
summary: Builds things.
contacts:
  email: jane@example.com
  github: https://github.com/janedoe
`

func TestLoad_Embedded(t *testing.T) {
	site, err := Load(Embedded())
	require.NoError(t, err)

	assert.Equal(t, "Aman Devrani", site.Profile.Name)
	assert.Len(t, site.Skills, 3)
	assert.Len(t, site.Projects, 3)
	assert.Len(t, site.Experience, 5)
	assert.Len(t, site.Achievements, 6)
	assert.Len(t, site.Certifications, 3)

	assert.Equal(t, "93%", site.Projects[1].Accuracy)
	assert.Empty(t, site.Projects[0].Accuracy)
	assert.Equal(t, "https://leetcode.com/u/AMAN_6921", site.Achievements[0].Link)
	assert.Empty(t, site.Achievements[1].Link)
}

func TestLoad_MissingListsAreEmpty(t *testing.T) {
	site, err := Load(fstest.MapFS{
		ProfileFile: {Data: []byte(minimalProfile)},
	})
	require.NoError(t, err)
	assert.Empty(t, site.Projects)
	assert.Equal(t, []NavItem{{ID: "hero", Label: "Home"}, {ID: "contact", Label: "Contact"}}, Sections(site))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		file string
		kind ErrorKind
	}{
		{
			name: "missing profile",
			fsys: fstest.MapFS{},
			file: ProfileFile,
			kind: KindNotFound,
		},
		{
			name: "malformed yaml",
			fsys: fstest.MapFS{
				ProfileFile: {Data: []byte(minimalProfile)},
				SkillsFile:  {Data: []byte("skills: [oops")},
			},
			file: SkillsFile,
			kind: KindDecode,
		},
		{
			name: "profile without email",
			fsys: fstest.MapFS{
				ProfileFile: {Data: []byte("name: A\ntitle: B\nsummary: C\n")},
			},
			file: ProfileFile,
			kind: KindInvalid,
		},
		{
			name: "duplicate project ids",
			fsys: fstest.MapFS{
				ProfileFile: {Data: []byte(minimalProfile)},
				ProjectsFile: {Data: []byte(`
projects:
  - {id: a, title: One, description: x}
  - {id: a, title: Two, description: y}
`)},
			},
			file: ProjectsFile,
			kind: KindInvalid,
		},
		{
			name: "bad credential link",
			fsys: fstest.MapFS{
				ProfileFile: {Data: []byte(minimalProfile)},
				CertificationsFile: {Data: []byte(`
certifications:
  - {id: c, name: Cert, credential_link: "not a url"}
`)},
			},
			file: CertificationsFile,
			kind: KindInvalid,
		},
		{
			name: "empty skill category",
			fsys: fstest.MapFS{
				ProfileFile: {Data: []byte(minimalProfile)},
				SkillsFile:  {Data: []byte("skills:\n  - category: Tools\n    skills: []\n")},
			},
			file: SkillsFile,
			kind: KindInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fsys)
			require.Error(t, err)
			assert.True(t, IsKind(err, tt.kind), "got %v", err)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.file, le.File)
		})
	}
}

func TestSections_Embedded(t *testing.T) {
	site, err := Load(Embedded())
	require.NoError(t, err)

	var ids []string
	for _, s := range Sections(site) {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"hero", "skills", "projects", "experience", "achievements", "certifications", "contact"}, ids)
}

func TestGitHubHandle(t *testing.T) {
	p := Profile{Contacts: Contacts{GitHub: "https://github.com/AMAN6921"}}
	assert.Equal(t, "@AMAN6921", p.GitHubHandle())

	p.Contacts.GitHub = "https://github.com/someone/"
	assert.Equal(t, "@someone", p.GitHubHandle())

	p.Contacts.GitHub = ""
	assert.Equal(t, "", p.GitHubHandle())
}

func TestContactMethods(t *testing.T) {
	p := Profile{Contacts: Contacts{
		Email:  "me@example.com",
		GitHub: "https://github.com/me",
	}}
	methods := ContactMethods(p)
	require.Len(t, methods, 2)

	assert.Equal(t, "mailto:me@example.com", methods[0].Href)
	assert.True(t, methods[0].Copyable)
	assert.False(t, methods[0].External)

	assert.Equal(t, "@me", methods[1].Value)
	assert.True(t, methods[1].External)
}

func TestProjectHasLinks(t *testing.T) {
	assert.False(t, Project{}.HasLinks())
	assert.True(t, Project{GitHubLink: "https://github.com/x/y"}.HasLinks())
}

func writeProfile(t *testing.T, dir, name string) {
	t.Helper()
	body := "name: " + name + "\ntitle: Engineer\nsummary: Hi.\ncontacts:\n  email: a@example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProfileFile), []byte(body), 0o644))
}

func TestStore_Watch(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "First")

	store := NewStore(nil)
	require.NoError(t, store.Reload(dir))
	assert.Equal(t, "First", store.Site().Profile.Name)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.Watch(ctx, dir, zerolog.Nop()))

	writeProfile(t, dir, "Second")
	assert.Eventually(t, func() bool {
		return store.Site().Profile.Name == "Second"
	}, 5*time.Second, 20*time.Millisecond)

	// A broken file keeps the last good content.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProfileFile), []byte("name: [broken"), 0o644))
	time.Sleep(3 * reloadDebounce)
	assert.Equal(t, "Second", store.Site().Profile.Name)
}

func TestStore_ReloadFailureKeepsSite(t *testing.T) {
	site := &Site{Profile: Profile{Name: "Kept"}}
	store := NewStore(site)
	err := store.Reload(t.TempDir())
	assert.True(t, IsKind(err, KindNotFound))
	assert.Same(t, site, store.Site())
}
