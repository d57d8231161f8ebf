// Package content loads the portfolio records (profile, skills, projects,
// experience, achievements and certifications) from YAML data files.
package content

import (
	"embed"
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Data file names, relative to the content root.
const (
	ProfileFile        = "profile.yaml"
	SkillsFile         = "skills.yaml"
	ProjectsFile       = "projects.yaml"
	ExperienceFile     = "experience.yaml"
	AchievementsFile   = "achievements.yaml"
	CertificationsFile = "certifications.yaml"
)

// Files lists every data file Load reads.
var Files = []string{
	ProfileFile, SkillsFile, ProjectsFile,
	ExperienceFile, AchievementsFile, CertificationsFile,
}

type skillsFile struct {
	Skills []SkillCategory `yaml:"skills" validate:"dive"`
}

type projectsFile struct {
	Projects []Project `yaml:"projects" validate:"unique=ID,dive"`
}

type experienceFile struct {
	Experience []Experience `yaml:"experience" validate:"dive"`
}

type achievementsFile struct {
	Achievements []Achievement `yaml:"achievements" validate:"unique=ID,dive"`
}

type certificationsFile struct {
	Certifications []Certification `yaml:"certifications" validate:"unique=ID,dive"`
}

var validate = validator.New()

// Embedded returns the content shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Source returns the directory at dir, or the embedded content when dir is
// empty.
func Source(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

// Load reads and validates every data file in fsys. The profile is required;
// a missing list file means the list is empty.
func Load(fsys fs.FS) (*Site, error) {
	site := &Site{}

	if err := decode(fsys, ProfileFile, &site.Profile, true); err != nil {
		return nil, err
	}

	var (
		skills   skillsFile
		projects projectsFile
		exp      experienceFile
		ach      achievementsFile
		certs    certificationsFile
	)
	for _, f := range []struct {
		name string
		dst  any
	}{
		{SkillsFile, &skills},
		{ProjectsFile, &projects},
		{ExperienceFile, &exp},
		{AchievementsFile, &ach},
		{CertificationsFile, &certs},
	} {
		if err := decode(fsys, f.name, f.dst, false); err != nil {
			return nil, err
		}
	}

	site.Skills = skills.Skills
	site.Projects = projects.Projects
	site.Experience = exp.Experience
	site.Achievements = ach.Achievements
	site.Certifications = certs.Certifications
	return site, nil
}

func decode(fsys fs.FS, name string, dst any, required bool) error {
	raw, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		kind := KindDecode
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindNotFound
		}
		return &LoadError{File: name, Kind: kind, Err: err}
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		return &LoadError{File: name, Kind: KindDecode, Err: err}
	}
	if err := validate.Struct(dst); err != nil {
		return &LoadError{File: name, Kind: KindInvalid, Err: err}
	}
	return nil
}
