// Package seed owns bulk dataset loading: clearing the tables and
// repopulating them from the performer-schedule CSV or from a fixed sample
// set. Callers wrap each load in a transaction so a failed import rolls
// back instead of leaving a half-seeded database.
package seed

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/porchfest/backend/internal/helpers"
	"github.com/porchfest/backend/internal/models"
)

// FestivalDate anchors CSV timeslots, which only carry an hour.
var FestivalDate = time.Date(2019, time.September, 22, 0, 0, 0, 0, time.UTC)

// Truncate clears every table in reverse dependency order.
func Truncate(tx *gorm.DB) error {
	tables := []string{
		"performances",
		"favorites",
		"artist_genres",
		"artists",
		"genres",
		"porches",
		"users",
	}
	for _, table := range tables {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// timeslotHour extracts the starting hour from a slot like "2-3" or
// "12-1". Afternoon slots are written in 12-hour form, so anything but 12
// moves to PM.
func timeslotHour(slot string) (int, error) {
	start := strings.SplitN(strings.TrimSpace(slot), "-", 2)[0]
	hour, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return 0, fmt.Errorf("invalid timeslot %q: %w", slot, err)
	}
	if hour != 12 {
		hour += 12
	}
	return hour, nil
}

type scheduleRow struct {
	PorchAddress string
	Name         string
	Description  string
	Timeslot     string
}

func readScheduleCSV(path string) ([]scheduleRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty schedule file %s", path)
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Porch Address", "Name", "Description", "Assigned Timeslot"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("schedule file missing column %q", required)
		}
	}

	rows := make([]scheduleRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, scheduleRow{
			PorchAddress: record[columns["Porch Address"]],
			Name:         record[columns["Name"]],
			Description:  record[columns["Description"]],
			Timeslot:     record[columns["Assigned Timeslot"]],
		})
	}
	return rows, nil
}

// PopulateFromCSV truncates everything and reloads porches, artists and
// performances from the schedule CSV. Porches are distinct by address and
// artists distinct by name; one performance per row.
func PopulateFromCSV(tx *gorm.DB, path string) error {
	if err := Truncate(tx); err != nil {
		return err
	}

	rows, err := readScheduleCSV(path)
	if err != nil {
		return err
	}

	porches := map[string]*models.Porch{}
	for _, row := range rows {
		if _, ok := porches[row.PorchAddress]; ok {
			continue
		}
		porch := &models.Porch{Address: row.PorchAddress}
		if err := tx.Create(porch).Error; err != nil {
			return err
		}
		porches[row.PorchAddress] = porch
	}

	artists := map[string]*models.Artist{}
	for _, row := range rows {
		if _, ok := artists[row.Name]; ok {
			continue
		}
		artist := &models.Artist{
			Name:  row.Name,
			About: row.Description,
			Slug:  helpers.Slugify(row.Name),
		}
		if err := tx.Create(artist).Error; err != nil {
			return err
		}
		artists[row.Name] = artist
	}

	for _, row := range rows {
		hour, err := timeslotHour(row.Timeslot)
		if err != nil {
			return err
		}
		performance := models.Performance{
			ArtistID: artists[row.Name].ID,
			PorchID:  porches[row.PorchAddress].ID,
			Time:     FestivalDate.Add(time.Duration(hour) * time.Hour),
		}
		if err := tx.Create(&performance).Error; err != nil {
			return err
		}
	}
	return nil
}

var sampleGenres = []string{
	"Rock", "Musical theatre", "Soul music", "Pop music", "Folk music",
	"Blues", "Electronic dance music", "Jazz", "Country music", "Punk rock",
}

var samplePorches = []string{
	"105 Farm St", "106 2nd St", "130 Linn St", "202 E Falls St", "204 E Yates St",
}

var sampleArtists = []models.Artist{
	{
		Name:     "Daniel Kaiya",
		Hometown: "Ithaca, NY",
		About:    "I'm surrendering my expectations to the dance of it, the ride of the vibes, the will to live deeply from within, guided by true emotion, in devotion to the Earth and the Birth of possibility just beyond the edge of what I see.",
		Spotify:  "https://open.spotify.com/artist/3Nrfpe0tUJi4K4DXYWgMUX",
		Website:  "https://wildflowerfire.com/",
		Facebook: "https://www.facebook.com/kaiyamusic/",
	},
	{
		Name:     "The Flywheels",
		Hometown: "Ithaca, NY",
		About:    "Bluegrass with grit in the southern Finger Lakes region of New York.",
		Spotify:  "https://open.spotify.com/artist/06HL4z0CvFAxyc27GXpf02",
		Website:  "https://flywheels.bandcamp.com/",
		Facebook: "https://www.facebook.com/FlywheelsBluegrass/",
	},
	{
		Name:     "The Grady Girls",
		Hometown: "Ithaca, NY",
		About:    "Toe tapping, heart lifting, subtle and smiling, The Grady Girls breathe new life into timeless Irish dance tunes!",
		Spotify:  "https://open.spotify.com/artist/3TVXtAsR1Inumwj472S9r4",
		Website:  "https://soundcloud.com/the-grady-girls",
		Facebook: "https://www.facebook.com/thegradygirls/",
	},
	{
		Name:     "Northside Stringband",
		Hometown: "Ithaca, NY",
		About:    "Northside neighbors, Laura (fiddle/guitar), Deb (guitar/banjo), Marc Faris (guitar/banjo) and Scott (bass) enjoy playing Southern old time music together and with friends.",
		Spotify:  "https://open.spotify.com/artist/1Xyo4u8uXC1ZmMpatF05PJ",
		Website:  "https://www.deborahjustice.org/northside-stringband",
		Facebook: "https://www.facebook.com/Northside-Stringband-536218100207433/",
	},
	{
		Name:     "Bob Keefe and the Surf Renegades",
		Hometown: "Ithaca, NY",
		About:    "The Surf Renegades are the only authentic surf band in Central New York. Their repertoire includes standard surf tunes by the Ventures, Dick Dale (and other So. Cal. surf bands) and surf originals by Bob Keefe.",
		Spotify:  "https://open.spotify.com/artist/6qqNVTkY8uBg9cP3Jd7DAH",
		Website:  "https://www.surf-renegades.com/",
		Facebook: "https://www.facebook.com/BobKeefeSurf/",
	},
}

// Sample truncates everything and loads the fixed demo dataset: five
// porches, ten genres, five fully-profiled artists, one performance per
// artist and a random handful of genres each.
func Sample(tx *gorm.DB) error {
	if err := Truncate(tx); err != nil {
		return err
	}

	porches := make([]models.Porch, len(samplePorches))
	for i, address := range samplePorches {
		porches[i] = models.Porch{Address: address}
		if err := tx.Create(&porches[i]).Error; err != nil {
			return err
		}
	}

	genres := make([]models.Genre, len(sampleGenres))
	for i, name := range sampleGenres {
		genres[i] = models.Genre{Name: name, Slug: helpers.Slugify(name)}
		if err := tx.Create(&genres[i]).Error; err != nil {
			return err
		}
	}

	for i := range sampleArtists {
		artist := sampleArtists[i]
		artist.ID = uuid.Nil
		artist.Slug = helpers.Slugify(artist.Name)

		count := 1 + rand.Intn(len(genres)/2)
		picked := rand.Perm(len(genres))[:count]
		for _, j := range picked {
			artist.Genres = append(artist.Genres, genres[j])
		}

		if err := tx.Create(&artist).Error; err != nil {
			return err
		}

		performance := models.Performance{
			ArtistID: artist.ID,
			PorchID:  porches[i].ID,
			Time:     FestivalDate.Add(time.Duration(1+rand.Intn(12)) * time.Hour),
		}
		if err := tx.Create(&performance).Error; err != nil {
			return err
		}
	}
	return nil
}
