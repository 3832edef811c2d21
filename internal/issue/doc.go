// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and
// Markdown-formatted guidance for the document load failures fc-audit can
// run into, improving the user experience when a run aborts.
package issue
