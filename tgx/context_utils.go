package tgx

import (
	"strings"
)

// extractCommandAndText splits "/cmd@bot args" into the command name and the
// argument tail. In group chats a bare command is treated as plain text, the
// bot must be mentioned explicitly.
func extractCommandAndText(text string, botUsername string, isChat bool) (string, string) {
	if len(text) <= 1 || text[0] != '/' || strings.HasPrefix(text, "/@") {
		return "", text
	}

	spaceIdx := strings.Index(text, " ")
	atIdx := strings.Index(text, "@")

	if atIdx == -1 && isChat {
		return "", text
	}

	if atIdx != -1 && (spaceIdx == -1 || atIdx < spaceIdx) {
		mention := text[atIdx:]
		if spaceIdx != -1 {
			mention = text[atIdx:spaceIdx]
		}

		if mention != "@"+botUsername {
			return "", text
		}

		if spaceIdx == -1 {
			return text[1:atIdx], ""
		}

		return text[1:atIdx], text[spaceIdx+1:]
	}

	if spaceIdx == -1 {
		return text[1:], ""
	}

	return text[1:spaceIdx], text[spaceIdx+1:]
}
