package sheetsclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type valueRange struct {
	Range          string          `json:"range"`
	MajorDimension string          `json:"majorDimension"`
	Values         [][]interface{} `json:"values"`
}

type spreadsheet struct {
	Sheets []struct {
		Properties struct {
			Title string `json:"title"`
			Index int    `json:"index"`
		} `json:"properties"`
	} `json:"sheets"`
}

func (c *SheetsClient) GetValues(ctx context.Context, spreadsheetID, rangeA1 string) ([][]string, error) {
	params := url.Values{}
	params.Add("valueRenderOption", "FORMATTED_VALUE")
	params.Add("majorDimension", "ROWS")

	endpoint := fmt.Sprintf("%s/%s/values/%s?%s",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(rangeA1), params.Encode())

	var response valueRange
	if err := c.do(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(response.Values))
	for _, row := range response.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellString(cell)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (c *SheetsClient) ListSheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/%s?fields=%s",
		c.baseURL, url.PathEscape(spreadsheetID), url.QueryEscape("sheets.properties(title,index)"))

	var response spreadsheet
	if err := c.do(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	titles := make([]string, len(response.Sheets))
	for i, s := range response.Sheets {
		titles[i] = s.Properties.Title
	}
	return titles, nil
}

// QuoteSheet monta o intervalo A1 de uma aba inteira
func QuoteSheet(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
