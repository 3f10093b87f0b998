package impl

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"

	"taponn/internal/domain/entity"
	domainerrors "taponn/internal/domain/errors"
	"taponn/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	maxHandleAttempts = 10
	fallbackHandle    = "user"
)

// randomSuffix returns a four digit number in [1000, 9999].
func randomSuffix() int {
	return 1000 + rand.IntN(9000)
}

// handleBase lower-cases name and drops everything that is not a letter or digit.
func handleBase(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallbackHandle
	}

	return b.String()
}

// createWithGeneratedHandle inserts profile under a fresh handle derived from its
// display name. Taken handles are skipped on the pre-check and on a unique
// violation at insert time.
func createWithGeneratedHandle(ctx context.Context, repo repository.ProfileRepository, profile *entity.Profile, suffix func() int) error {
	base := handleBase(profile.DisplayName)

	for range maxHandleAttempts {
		candidate := base + strconv.Itoa(suffix())

		exists, err := repo.UsernameExists(ctx, candidate)
		if err != nil {
			return errors.Wrap(err, "failed to check handle availability")
		}
		if exists {
			continue
		}

		profile.Username = &candidate
		err = repo.Create(ctx, profile)
		if errors.Is(err, domainerrors.ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		return nil
	}

	profile.Username = nil

	return errors.Wrapf(domainerrors.ErrHandleGenerationFailed, "no free handle for %q after %d attempts", base, maxHandleAttempts)
}
