package snds

import "encoding/csv"

// ReadHeaderKeyed reads a possibly-compressed CSV file whose first record is
// the header. It returns the header in file order plus one Row per data
// record. A file with no records yields empty results, not an error. Ragged
// records are tolerated: fields beyond the record's length read as "".
func ReadHeaderKeyed(path string) ([]string, []Row, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// ReadRaw reads every record of a possibly-compressed CSV file, header
// included, as ordered string slices. Used for the ipStatus export whose
// header content and order are not trustworthy enough for name-keyed access.
func ReadRaw(path string) ([][]string, error) {
	return readAll(path)
}

func readAll(path string) ([][]string, error) {
	rc, err := OpenText(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	r := csv.NewReader(rc)
	// SNDS exports are occasionally ragged; absent fields become "".
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
