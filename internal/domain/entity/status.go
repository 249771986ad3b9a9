package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

// StatusLabel par forma máquina ↔ etiqueta legible que consume el front-end.
type StatusLabel struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProjectStatuses tabla de estados de proyecto. Debe mantenerse sincronizada con el front-end.
var ProjectStatuses = []StatusLabel{
	{ProjectPlanned, "Planned"},
	{ProjectInProgress, "In Progress"},
	{ProjectCompleted, "Completed"},
	{ProjectOnHold, "On Hold"},
}

// TaskStatuses tabla de estados de tarea.
var TaskStatuses = []StatusLabel{
	{TaskNew, "New"},
	{TaskInProgress, "In Progress"},
	{TaskBlocked, "Blocked"},
	{TaskDone, "Done"},
}

var folder = cases.Fold()

// NormalizeStatus acepta la forma máquina o la etiqueta (sin distinguir mayúsculas)
// y devuelve la forma máquina. ok=false si no pertenece a la tabla.
func NormalizeStatus(table []StatusLabel, in string) (string, bool) {
	s := folder.String(strings.TrimSpace(in))
	for _, st := range table {
		if s == st.Value || s == folder.String(st.Label) {
			return st.Value, true
		}
	}
	return "", false
}

// StatusToLabel devuelve la etiqueta legible; si el valor no está en la tabla lo devuelve tal cual.
func StatusToLabel(table []StatusLabel, value string) string {
	for _, st := range table {
		if st.Value == value {
			return st.Label
		}
	}
	return value
}
