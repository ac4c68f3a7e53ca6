/*
   Copyright 2025 The tp Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the shell.
type Styles struct {
	Header   lipgloss.Style
	Prompt   lipgloss.Style
	Feedback lipgloss.Style
	Error    lipgloss.Style
	Index    lipgloss.Style
	Name     lipgloss.Style
	Detail   lipgloss.Style
	Chip     lipgloss.Style
	Remark   lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the shell's colour scheme.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color("#3c3f58")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7d56f4")).
			Bold(true),
		Feedback: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8cc8c")).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e88388")).
			Padding(0, 1),
		Index: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c6c6c")).
			Width(4).
			Align(lipgloss.Right),
		Name: lipgloss.NewStyle().
			Bold(true),
		Detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9e9e9e")).
			PaddingLeft(5),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#3e7cb1")).
			Padding(0, 1).
			MarginRight(1),
		Remark: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dbab79")).
			Italic(true).
			PaddingLeft(5),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c6c6c")).
			Padding(0, 1),
	}
}
