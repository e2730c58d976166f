// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/database"
	"github.com/jetsetilly/gophernes/debugger/terminal/colorterm/easyterm"
)

// RegressionError is the pattern for errors returned by the package.
const RegressionError = "regression: %v"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression. newRegression is true if the entry is being
	// added to the database. the message is printed while the regression
	// runs
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// register the entry types found in the database
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(digestEntryType, deserialiseDigestEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	db.List(output)
	return nil
}

// RegressAdd runs the regression and adds it to the database.
func RegressAdd(output io.Writer, reg Regressor, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}

	_, _, err = reg.regress(true, output, fmt.Sprintf("adding: %s", reg))
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	key, err := db.Add(reg)
	if err != nil {
		_ = db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "%s\radded: %03d %s\n", easyterm.ClearLine, key, reg)

	return db.EndSession(true)
}

// RegressDelete removes an entry from the database. The user is asked for
// confirmation through the confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, key string, dbPath string) error {
	k, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(RegressionError, fmt.Sprintf("invalid key: %s", key))
	}

	db, err := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	ent, err := db.Get(k)
	if err != nil {
		_ = db.EndSession(false)
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 1)
	_, err = confirmation.Read(confirm)
	if err != nil && err != io.EOF {
		_ = db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	if confirm[0] != 'y' && confirm[0] != 'Y' {
		fmt.Fprintln(output, "not deleted")
		return db.EndSession(false)
	}

	if err := db.Delete(k); err != nil {
		_ = db.EndSession(false)
		return err
	}
	fmt.Fprintf(output, "deleted test #%03d from regression database\n", k)

	return db.EndSession(true)
}

// Results of a call to RegressRun().
type Results struct {
	Succeed int
	Fail    int
	Error   int
}

func (r Results) String() string {
	s := fmt.Sprintf("regression tests: %d succeed, %d fail", r.Succeed, r.Fail)
	if r.Error > 0 {
		s = fmt.Sprintf("%s [with %d errors]", s, r.Error)
	}
	return s
}

// RegressRun runs the entries in the database with the listed keys. An empty
// list of keys runs every entry. Failure details are printed if verbose is
// true.
func RegressRun(output io.Writer, verbose bool, keys []string, dbPath string) (Results, error) {
	var res Results

	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return res, err
	}
	defer db.EndSession(false)

	filter := make([]int, 0, len(keys))
	for _, k := range keys {
		v, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return res, curated.Errorf(RegressionError, fmt.Sprintf("invalid key: %s", k))
		}
		filter = append(filter, v)
	}

	onSelect := func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf(RegressionError, fmt.Sprintf("entry is not a regressor: %03d", key))
		}

		ok, failm, err := reg.regress(false, output, fmt.Sprintf("running: %03d %s", key, reg))
		fmt.Fprint(output, easyterm.ClearLine)

		switch {
		case err != nil:
			res.Error++
			fmt.Fprintf(output, "\r ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "  %v\n", err)
			}
		case !ok:
			res.Fail++
			fmt.Fprintf(output, "\rfailure: %03d %s\n", key, reg)
			if verbose && failm != "" {
				fmt.Fprintf(output, "  %s\n", failm)
			}
		default:
			res.Succeed++
			fmt.Fprintf(output, "\rsucceed: %03d %s\n", key, reg)
		}

		return nil
	}

	if _, err := db.SelectKeys(onSelect, filter...); err != nil {
		return res, err
	}

	fmt.Fprintln(output, res)

	return res, nil
}
