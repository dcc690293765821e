package responders

import (
	"html/template"
	"net/http"

	"github.com/jbeshir/referral-predictor-frontend/controllers"
	"github.com/sirupsen/logrus"
)

var formTemplate = template.Must(template.New("form").Parse(
	`<html>
<head>
	<title>Airline Passenger Referral Prediction</title>
	<style>
		body { font-family: sans-serif; max-width: 40em; margin: 2em auto; }
		.info-banner, .recommendation-no { background: #e8f0fe; padding: 1em; border-radius: 4px; }
		.recommendation-yes { background: #e6f4ea; padding: 1em; border-radius: 4px; }
		.prediction-fault-msg { background: #fce8e6; padding: 1em; border-radius: 4px; }
		.rating, .choice { margin: 1em 0; }
		label { display: block; }
	</style>
</head>
<body class="predict-page">
<h1>Airline Passenger Referral Prediction</h1>
<div class="info-banner">The project aims to predict whether a passenger referred by an existing customer will book a flight or not.</div>
<form id="referral-form" action="/" method="get">
{{range .Ratings}}	<div class="rating">
		<label for="{{.Name}}">{{.Label}}</label>
		<input type="range" class="rating-input" id="{{.Name}}" name="{{.Name}}" min="{{.Min}}" max="{{.Max}}" step="1" value="{{.Value}}" onchange="this.form.submit()">
		<output class="rating-value" for="{{.Name}}">{{.Value}}</output>
	</div>
{{end}}{{range .Choices}}	<div class="choice">
		<label for="{{.Name}}">{{.Label}}</label>
		<select class="choice-input" id="{{.Name}}" name="{{.Name}}" onchange="this.form.submit()">
		{{$value := .Value}}{{range .Options}}<option value="{{.}}"{{if eq . $value}} selected{{end}}>{{.}}</option>{{end}}
		</select>
	</div>
{{end}}	<button type="submit" class="recommend-button" name="action" value="recommend">Get Recommendation</button>
</form>
{{with .Outcome}}{{if .Recommended}}<div class="recommendation recommendation-yes">{{.Message}}</div>{{else}}<div class="recommendation recommendation-no">{{.Message}}</div>{{end}}{{end}}
{{if .PredictionErr}}<div class="prediction-fault-msg">Fault getting a recommendation!<div id="prediction-fault">{{.PredictionErr}}</div></div>{{end}}
</body>
</html>`))

type WebFormResponder struct{}

func (_ *WebFormResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebFormResponder) OnResult(w http.ResponseWriter, r *controllers.RecommendResult) {
	if err := formTemplate.Execute(w, r); err != nil {
		logrus.Errorf("Unable to render form: %s", err)
	}
}
