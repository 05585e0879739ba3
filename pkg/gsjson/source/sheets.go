package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ukaji3/gsjson-go/pkg/gsjson/models"
)

// DefaultTokenType is the token type used when none is given.
const DefaultTokenType = "Bearer"

// Auth holds the credentials for the Sheets API. Credentials take precedence
// over Token; with neither set the spreadsheet must be public.
type Auth struct {
	// Credentials is a service account key in JSON form.
	Credentials []byte
	// Token is an OAuth access token.
	Token string
	// TokenType is the token type (Bearer when empty).
	TokenType string
}

// ClientOptions returns the API client options for a.
func (a Auth) ClientOptions() []option.ClientOption {
	switch {
	case len(a.Credentials) > 0:
		return []option.ClientOption{
			option.WithCredentialsJSON(a.Credentials),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope),
		}
	case a.Token != "":
		tokenType := a.TokenType
		if tokenType == "" {
			tokenType = DefaultTokenType
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: a.Token, TokenType: tokenType})
		return []option.ClientOption{option.WithTokenSource(ts)}
	}
	return []option.ClientOption{option.WithoutAuthentication()}
}

// GoogleSheets reads cells from a Google spreadsheet.
type GoogleSheets struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewGoogleSheets creates a source for the spreadsheet with the given id.
// Extra client options are applied after the auth options.
func NewGoogleSheets(ctx context.Context, spreadsheetID string, auth Auth, opts ...option.ClientOption) (*GoogleSheets, error) {
	svc, err := sheets.NewService(ctx, append(auth.ClientOptions(), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &GoogleSheets{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Worksheets lists the spreadsheet's sheets in tab order.
func (g *GoogleSheets) Worksheets(ctx context.Context) ([]models.Worksheet, error) {
	resp, err := g.svc.Spreadsheets.Get(g.spreadsheetID).
		Fields("sheets.properties(index,title)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	var result []models.Worksheet
	for _, sheet := range resp.Sheets {
		if sheet.Properties == nil {
			continue
		}
		result = append(result, models.Worksheet{
			Index: int(sheet.Properties.Index),
			Title: sheet.Properties.Title,
		})
	}
	return result, nil
}

// Cells fetches the grid data of a sheet.
func (g *GoogleSheets) Cells(ctx context.Context, ws models.Worksheet) ([]models.Cell, error) {
	resp, err := g.svc.Spreadsheets.Get(g.spreadsheetID).
		Ranges(sheetRange(ws.Title)).
		IncludeGridData(true).
		Fields("sheets(data(startRow,startColumn,rowData(values(formattedValue,effectiveValue))))").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	var cells []models.Cell
	for _, sheet := range resp.Sheets {
		for _, data := range sheet.Data {
			cells = append(cells, gridCells(data)...)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("spreadsheet", g.spreadsheetID).
		Str("sheet", ws.Title).
		Int("cells", len(cells)).
		Msg("sheet cells fetched")
	return cells, nil
}

// gridCells converts one block of grid data into cells.
func gridCells(data *sheets.GridData) []models.Cell {
	var cells []models.Cell
	for r, row := range data.RowData {
		if row == nil {
			continue
		}
		for c, value := range row.Values {
			if value == nil {
				continue
			}
			cell := models.Cell{
				Row:   int(data.StartRow) + r + 1,
				Col:   int(data.StartColumn) + c + 1,
				Value: value.FormattedValue,
			}
			if ev := value.EffectiveValue; ev != nil && ev.NumberValue != nil {
				cell.NumericValue = models.Number(*ev.NumberValue)
			}
			if cell.IsEmpty() {
				continue
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

// sheetRange quotes a sheet title for A1 notation.
func sheetRange(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
