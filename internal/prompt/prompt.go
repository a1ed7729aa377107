// Package prompt assembles the instruction text sent to a provider. The
// instruction comes from a style template, an environment override, or a
// prompt file, in that order of increasing precedence.
package prompt

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gitsummary/internal/config"
)

const classicPreface = "You are an expert technical writer. Produce a clean Markdown report with this exact structure:\n" +
	"# Git Activity Report\n\n" +
	"For each repository present in the input, include a section in this format:\n" +
	"## <RepositoryName>\n\n" +
	"### Recent Commits (Last N Days):\n" +
	"*   `<short_hash>` <commit_subject>\n" +
	"(one bullet per commit, keep subjects as-is; do not add extra commentary)\n\n" +
	"### Notable Uncommitted Changes:\n" +
	"*   None reported.  (if there are no uncommitted changes)\n" +
	"or list a few bullets summarizing real changes only.\n\n" +
	"Do not add generic text, disclaimers, or introductions beyond the above headings."

const concisePreface = "Summarize the following git activity into a concise, well-structured Markdown report. " +
	"Group by repository, show key commits (bulleted), and note notable uncommitted changes. " +
	"Keep it action-focused and avoid boilerplate."

const defaultSummaryInstruction = "Summarize the following git activity for a concise daily report. " +
	"Group by repository, highlight meaningful changes, and skip noise."

// OpenAISystemMessage is sent as the system message when no custom prompt
// override is active.
const OpenAISystemMessage = "You are an expert at concise software progress summaries."

// StylePreface returns the instruction template for the given style.
// "classic" yields the strict report skeleton; anything else yields the
// concise variant.
func StylePreface(style string) string {
	if style == "classic" {
		return classicPreface
	}
	return concisePreface
}

// Compose joins an instruction with the input text to form the final
// prompt payload.
func Compose(instruction, text string) string {
	return instruction + "\n\n" + text
}

// Resolved carries the summary instruction and whether it came from a
// user override (SUMMARY_PROMPT_FILE or SUMMARY_PROMPT).
type Resolved struct {
	Instruction string
	Custom      bool
}

// ResolveSummary picks the summary instruction: a non-empty prompt file
// wins, then the SUMMARY_PROMPT variable, then the built-in default.
// An unreadable or empty prompt file logs a warning and falls through.
func ResolveSummary(cfg config.Config) Resolved {
	if path := strings.TrimSpace(cfg.SummaryPromptFile); path != "" {
		if !filepath.IsAbs(path) {
			if wd, err := os.Getwd(); err == nil {
				path = filepath.Join(wd, path)
			}
		}
		content, err := os.ReadFile(path)
		if err != nil {
			// A missing file is skipped silently; only real read
			// failures are worth a warning.
			if !os.IsNotExist(err) {
				slog.Warn("could not read SUMMARY_PROMPT_FILE",
					slog.String("path", path),
					slog.Any("err", err))
			}
		} else if custom := strings.TrimSpace(string(content)); custom != "" {
			return Resolved{Instruction: custom, Custom: true}
		}
	}
	if custom := strings.TrimSpace(cfg.SummaryPrompt); custom != "" {
		return Resolved{Instruction: custom, Custom: true}
	}
	return Resolved{Instruction: defaultSummaryInstruction}
}
