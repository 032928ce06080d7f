// Package cli provides the interactive Médico command-line client.
//
// It wires configuration, the local submission journal, the API client and
// its services behind a small REPL. A doctor logs in, browses approved
// appointments, searches history, looks up patients and records encounters
// with image attachments.
//
// Commands:
//   - login / logout / whoami
//   - citas                 approved appointments
//   - historial             history search with optional filters
//   - paciente <id>         patient detail
//   - atender <cita_id>     record an encounter for an appointment
//   - journal               recent local submission attempts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
