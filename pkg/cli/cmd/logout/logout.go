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

package logout

import (
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/consts"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/context"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/database"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/infra"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrNotLoggedIn is an error for logging out when not logged in
var ErrNotLoggedIn = errors.New("not logged in")

var example = `
  hackmd logout`

// NewCmd returns a new logout command
func NewCmd(ctx context.HackMDCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logout",
		Short:   "Remove the stored API token",
		Example: example,
		RunE:    newRun(ctx),
	}

	return cmd
}

// Do removes the stored API token
func Do(ctx context.HackMDCtx) error {
	db := ctx.DB
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning a transaction")
	}

	var token string
	err = database.GetSystem(tx, consts.SystemAPIToken, &token)
	if errors.Is(err, database.ErrSystemKeyNotFound) {
		tx.Rollback()
		return ErrNotLoggedIn
	} else if err != nil {
		tx.Rollback()
		return errors.Wrap(err, "getting the api token")
	}

	if err := database.DeleteSystem(tx, consts.SystemAPIToken); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "deleting the api token")
	}
	if err := database.DeleteSystem(tx, consts.SystemTokenVerifiedAt); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "deleting the token verification time")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing the transaction")
	}

	return nil
}

func newRun(ctx context.HackMDCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		err := Do(ctx)
		if err == ErrNotLoggedIn {
			log.Error("not logged in\n")
			return nil
		} else if err != nil {
			return errors.Wrap(err, "logging out")
		}

		log.Success("logged out\n")

		return nil
	}
}
