/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package login

import (
	"net/url"
	"os"
	"strings"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/database"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrInvalidToken is returned when the API rejects the token
var ErrInvalidToken = errors.New("the API token was rejected")

var example = `
  hackmd login
  hackmd login --token <api-token>`

var tokenFlag string

// NewCmd returns a new login command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Store an API token after verifying it",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVar(&tokenFlag, "token", "", "API token (prompted for when omitted)")

	return cmd
}

// Do verifies the token against the API and stores it
func Do(ctx context.HackMDCtx, token string) (client.User, error) {
	ctx.APIToken = token

	user, err := client.GetMe(ctx)
	if err != nil {
		var httpErr *client.HTTPError
		if errors.As(err, &httpErr) && httpErr.IsUnauthorized() {
			return user, ErrInvalidToken
		}
		return user, errors.Wrap(err, "verifying the token")
	}

	db := ctx.DB
	tx, err := db.Begin()
	if err != nil {
		return user, errors.Wrap(err, "beginning a transaction")
	}

	if err := database.UpsertSystem(tx, consts.SystemAPIToken, token); err != nil {
		tx.Rollback()
		return user, errors.Wrap(err, "saving the api token")
	}
	if err := database.UpsertSystem(tx, consts.SystemTokenVerifiedAt, ctx.Clock.Now().Unix()); err != nil {
		tx.Rollback()
		return user, errors.Wrap(err, "saving the token verification time")
	}

	if err := tx.Commit(); err != nil {
		return user, errors.Wrap(err, "committing the transaction")
	}

	return user, nil
}

func readToken(ctx context.HackMDCtx) (string, error) {
	if tokenFlag != "" {
		return tokenFlag, nil
	}

	if u := getServerDisplayURL(ctx); u != "" {
		log.Infof("create an API token at %s/settings#api\n", u)
	}

	var token string
	if err := ui.PromptPassword("API token", &token); err != nil {
		return "", errors.Wrap(err, "getting the token input")
	}

	return strings.TrimSpace(token), nil
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		token, err := readToken(ctx)
		if err != nil {
			return err
		}
		if token == "" {
			return errors.New("empty API token")
		}

		user, err := Do(ctx, token)
		if err != nil {
			return errors.Wrap(err, "logging in")
		}

		log.Successf("logged in as %s\n", user.Name)
		if os.Getenv(consts.EnvAPIToken) != "" {
			log.Warnf("%s is set and takes precedence over the stored token\n", consts.EnvAPIToken)
		}

		return nil
	}
}

// getServerDisplayURL returns the web address of the service the API
// endpoint belongs to, or an empty string if it cannot be derived
func getServerDisplayURL(ctx context.HackMDCtx) string {
	u, err := url.Parse(ctx.APIEndpoint)
	if err != nil {
		return ""
	}

	if u.Scheme == "" || u.Host == "" {
		return ""
	}

	host := strings.TrimPrefix(u.Host, "api.")

	return u.Scheme + "://" + host
}
