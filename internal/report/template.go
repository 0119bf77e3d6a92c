package report

import "html/template"

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>EduBoost Report Card - {{.Date}}</title>
<style>
  body { font-family: system-ui, sans-serif; background: #f5f3ff; color: #1e1b4b;
         max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
  .card { background: #fff; border-radius: 12px; padding: 1.5rem; margin-bottom: 1rem;
          box-shadow: 0 1px 4px rgba(79, 70, 229, 0.15); }
  .grade { font-size: 4rem; font-weight: 800; color: #4f46e5; }
  .stats { display: flex; gap: 2rem; }
  .stat .value { font-size: 1.5rem; font-weight: 700; }
  .stat .label { font-size: 0.8rem; color: #6b7280; text-transform: uppercase; }
  table { width: 100%; border-collapse: collapse; }
  th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #e5e7eb; }
  th { font-size: 0.8rem; color: #6b7280; text-transform: uppercase; }
  .bar { background: #e0e7ff; border-radius: 4px; height: 8px; overflow: hidden; }
  .bar > div { background: #4f46e5; height: 100%; }
  footer { font-size: 0.75rem; color: #9ca3af; text-align: center; margin-top: 2rem; }
</style>
</head>
<body>
<div class="card">
  <div class="stats">
    <div class="stat">
      <div class="grade">{{.Grade}}</div>
      <div class="label">Today's Grade</div>
    </div>
    <div class="stat">
      <div class="value">{{printf "%.1f" .Hours}}h</div>
      <div class="label">Studied Today</div>
    </div>
    <div class="stat">
      <div class="value">{{.StreakDays}}</div>
      <div class="label">Day Streak</div>
    </div>
    <div class="stat">
      <div class="value">{{.TasksDone}}/{{.TasksTotal}}</div>
      <div class="label">Tasks Done</div>
    </div>
  </div>
</div>

<div class="card">
  <h2>Goals</h2>
  <table>
    <tr><th>Goal</th><th>Window</th><th>Progress</th><th></th></tr>
    {{range .Windows}}
    <tr>
      <td>{{.Label}}</td>
      <td>{{.Period}}</td>
      <td>{{printf "%.1f" .CurrentHours}}h / {{printf "%.0f" .GoalHours}}h ({{.Status}})</td>
      <td style="width: 30%"><div class="bar"><div style="width: {{printf "%.0f" .Percent}}%"></div></div></td>
    </tr>
    {{end}}
  </table>
</div>

{{if .Subjects}}
<div class="card">
  <h2>Time by Subject</h2>
  <table>
    <tr><th>Subject</th><th>Hours</th></tr>
    {{range .Subjects}}
    <tr><td>{{.Name}}</td><td>{{printf "%.1f" .Hours}}h</td></tr>
    {{end}}
  </table>
</div>
{{end}}

<footer>EduBoost report card for {{.Date}} &middot; generated {{.GeneratedAt}}</footer>
</body>
</html>
`))
