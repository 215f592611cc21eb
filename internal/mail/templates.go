package mail

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"os"
	texttemplate "text/template"

	"github.com/Dolapo001/SPAS/internal/database/models"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.tmpl
var defaultTemplates embed.FS

const (
	// DefaultSubject is used for notifications sent after an allocation run
	DefaultSubject = "Project Group Allocation Notification"
	// DefaultBody is used for notifications sent after an allocation run
	DefaultBody = "You have been allocated to a project group. Please check the system for details."
	// DefaultAdHocSubject is used for single group notifications without a subject
	DefaultAdHocSubject = "Group Allocation Info"
)

// TemplateOverrides is the layout of the optional templates file. Empty
// fields keep the built-in template.
type TemplateOverrides struct {
	Subject        string `yaml:"subject"`
	Body           string `yaml:"body"`
	SupervisorHTML string `yaml:"supervisor_html"`
	SupervisorText string `yaml:"supervisor_text"`
	StudentHTML    string `yaml:"student_html"`
	StudentText    string `yaml:"student_text"`
}

// SupervisorData is passed to the supervisor templates
type SupervisorData struct {
	Group      models.Group
	Supervisor *models.Supervisor
	Students   []models.Student
	Body       string
}

// StudentData is passed to the student templates
type StudentData struct {
	Group      models.Group
	Supervisor *models.Supervisor
	Student    models.Student
	Body       string
}

// Renderer renders notification bodies
type Renderer struct {
	subject        string
	body           string
	supervisorHTML *htmltemplate.Template
	supervisorText *texttemplate.Template
	studentHTML    *htmltemplate.Template
	studentText    *texttemplate.Template
}

// NewRenderer parses the built-in templates, then applies overrides from
// path when it is not empty
func NewRenderer(path string) (*Renderer, error) {
	var overrides TemplateOverrides
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read templates file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &overrides); err != nil {
			return nil, fmt.Errorf("parse templates file: %w", err)
		}
	}
	return NewRendererFromOverrides(overrides)
}

// NewRendererFromOverrides builds a Renderer from in-memory overrides
func NewRendererFromOverrides(o TemplateOverrides) (*Renderer, error) {
	r := &Renderer{subject: DefaultSubject, body: DefaultBody}
	if o.Subject != "" {
		r.subject = o.Subject
	}
	if o.Body != "" {
		r.body = o.Body
	}

	var err error
	if r.supervisorHTML, err = parseHTML("supervisor.html", o.SupervisorHTML); err != nil {
		return nil, err
	}
	if r.supervisorText, err = parseText("supervisor.txt", o.SupervisorText); err != nil {
		return nil, err
	}
	if r.studentHTML, err = parseHTML("student.html", o.StudentHTML); err != nil {
		return nil, err
	}
	if r.studentText, err = parseText("student.txt", o.StudentText); err != nil {
		return nil, err
	}
	return r, nil
}

func templateSource(name, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	raw, err := defaultTemplates.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("load template %s: %w", name, err)
	}
	return string(raw), nil
}

func parseHTML(name, override string) (*htmltemplate.Template, error) {
	src, err := templateSource(name, override)
	if err != nil {
		return nil, err
	}
	t, err := htmltemplate.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return t, nil
}

func parseText(name, override string) (*texttemplate.Template, error) {
	src, err := templateSource(name, override)
	if err != nil {
		return nil, err
	}
	t, err := texttemplate.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return t, nil
}

// Subject is the subject used after an allocation run
func (r *Renderer) Subject() string { return r.subject }

// Body is the message body used after an allocation run
func (r *Renderer) Body() string { return r.body }

// Supervisor renders the supervisor message with the roster attached
func (r *Renderer) Supervisor(to, subject string, data SupervisorData) (*Message, error) {
	var html, text bytes.Buffer
	if err := r.supervisorHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render supervisor html: %w", err)
	}
	if err := r.supervisorText.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render supervisor text: %w", err)
	}
	roster, err := RosterCSV(data.Students)
	if err != nil {
		return nil, err
	}
	return &Message{
		To:       to,
		Subject:  subject,
		HTMLBody: html.String(),
		TextBody: text.String(),
		Attachments: []Attachment{{
			Filename:    RosterFilename(data.Group.Number),
			ContentType: "text/csv",
			Data:        roster,
		}},
	}, nil
}

// Student renders an individual student message
func (r *Renderer) Student(to, subject string, data StudentData) (*Message, error) {
	var html, text bytes.Buffer
	if err := r.studentHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render student html: %w", err)
	}
	if err := r.studentText.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render student text: %w", err)
	}
	return &Message{
		To:       to,
		Subject:  subject,
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}
