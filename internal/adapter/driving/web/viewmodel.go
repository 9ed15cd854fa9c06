package web

import (
	"net/url"
	"slices"
	"strings"
	"time"

	vm "github.com/Aman-pandey-5909/shield-my-keys/internal/adapter/driving/web/viewmodel"
	"github.com/Aman-pandey-5909/shield-my-keys/internal/domain/model"
)

// maskedPassword is shown in place of a password that is not revealed.
const maskedPassword = "••••••••"

// toStrengthMeterViewModel converts a StrengthResult to a meter view model.
// visible is false when the user has not typed anything yet.
func toStrengthMeterViewModel(res model.StrengthResult, visible bool) vm.StrengthMeterViewModel {
	feedback := res.Feedback
	if feedback == nil {
		feedback = []string{}
	}

	return vm.StrengthMeterViewModel{
		Visible:  visible,
		Level:    string(res.Level),
		Label:    res.Level.Label(),
		Color:    res.Level.Color(),
		Bars:     res.Level.Bars(),
		Score:    res.Score,
		Feedback: feedback,
	}
}

// toCredentialRowViewModels converts saved records to rows. revealed holds the
// ids whose passwords are shown in clear text.
func toCredentialRowViewModels(records []model.CredentialRecord, revealed []string) []vm.CredentialRowViewModel {
	rows := make([]vm.CredentialRowViewModel, 0, len(records))
	for _, rec := range records {
		isRevealed := slices.Contains(revealed, rec.ID)

		password := maskedPassword
		if isRevealed {
			password = rec.Password
		}

		rows = append(rows, vm.CredentialRowViewModel{
			ID:            rec.ID,
			Website:       rec.Website,
			Username:      rec.Username,
			Password:      password,
			Revealed:      isRevealed,
			ToggleURL:     toggleRevealURL(revealed, rec.ID),
			DeleteURL:     "/credentials/" + url.PathEscape(rec.ID) + "/delete",
			StrengthLabel: rec.Strength.Label(),
			StrengthColor: rec.Strength.Color(),
			CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

// parseRevealed reads the comma-separated "show" query parameter.
func parseRevealed(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// toggleRevealURL returns the dashboard URL with id added to or removed from
// the set of revealed rows.
func toggleRevealURL(revealed []string, id string) string {
	next := slices.Clone(revealed)
	if i := slices.Index(next, id); i >= 0 {
		next = slices.Delete(next, i, i+1)
	} else {
		next = append(next, id)
	}

	if len(next) == 0 {
		return "/"
	}
	return "/?" + url.Values{"show": {strings.Join(next, ",")}}.Encode()
}

// noticeFor maps the notice query parameter set by post-redirect-get flows.
func noticeFor(code, website string) *vm.NoticeViewModel {
	switch code {
	case "saved":
		desc := "Password has been saved"
		if website != "" {
			desc = "Password for " + website + " has been saved"
		}
		return &vm.NoticeViewModel{Title: "Password saved", Description: desc}
	case "deleted":
		return &vm.NoticeViewModel{Title: "Password deleted", Description: "Password has been removed"}
	}
	return nil
}
