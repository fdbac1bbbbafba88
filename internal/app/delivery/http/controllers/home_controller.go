package controllers

import (
	"bytes"
	"embed"
	"health-records-service/internal/app/config"
	"health-records-service/internal/pkg/constvars"
	"health-records-service/internal/pkg/exceptions"
	"health-records-service/internal/pkg/utils"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templateFS embed.FS

const indexTemplateName = "index.html"

type endpoint struct {
	Method      string
	Path        string
	Description string
}

var endpoints = []endpoint{
	{constvars.MethodPost, "/login", "authenticate a doctor"},
	{constvars.MethodPost, "/doctors", "create a doctor"},
	{constvars.MethodPost, "/patients/{doctorId}", "create a patient for a doctor"},
	{constvars.MethodGet, "/patients/{id}", "list a doctor's patients or get one patient"},
	{constvars.MethodGet, "/doctors/{doctorId}/patients", "list a doctor's patients"},
	{constvars.MethodPut, "/patients/{patientId}", "update a patient"},
	{constvars.MethodDelete, "/patients/{patientId}", "delete a patient"},
	{constvars.MethodDelete, "/patients", "delete several patients"},
}

type HomeController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	template       *template.Template
}

// NewHomeController parses the landing page once. APP_TEMPLATE_PATH replaces
// the embedded page.
func NewHomeController(logger *zap.Logger, internalConfig *config.InternalConfig) (*HomeController, error) {
	tmpl := template.New(indexTemplateName).Funcs(sprig.FuncMap())

	var err error
	if internalConfig.App.TemplatePath != "" {
		tmpl = template.New(filepath.Base(internalConfig.App.TemplatePath)).Funcs(sprig.FuncMap())
		tmpl, err = tmpl.ParseFiles(internalConfig.App.TemplatePath)
	} else {
		tmpl, err = tmpl.ParseFS(templateFS, "templates/"+indexTemplateName)
	}
	if err != nil {
		return nil, err
	}

	return &HomeController{
		Log:            logger,
		InternalConfig: internalConfig,
		template:       tmpl,
	}, nil
}

func (ctrl *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title":     "Health Records Service",
		"Version":   ctrl.InternalConfig.App.Version,
		"Env":       ctrl.InternalConfig.App.Env,
		"Endpoints": endpoints,
	}

	var body bytes.Buffer
	err := ctrl.template.Execute(&body, data)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRenderTemplate(err))
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	w.Write(body.Bytes())
}
