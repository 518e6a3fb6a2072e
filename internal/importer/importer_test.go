package importer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-attendance/internal/importer"
	"ms-attendance/internal/models"
)

func TestParseCSVBasicRow(t *testing.T) {
	payload := []byte("id,name,quantity,amount\nA1,Jane,2,400\n")

	candidates, err := importer.ParseCSV(payload)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "A1", c.ID)
	assert.Equal(t, "Jane", c.Name)
	require.NotNil(t, c.Quantity)
	assert.Equal(t, 2, *c.Quantity)
	require.NotNil(t, c.AmountPaid)
	assert.Equal(t, 400, *c.AmountPaid)
}

func TestParseCSVQuotedFields(t *testing.T) {
	payload := []byte(`id,name,email
T1,"Smith, Jane",jane@example.com
T2,"She said ""hi""",x@example.com`)

	candidates, err := importer.ParseCSV(payload)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "Smith, Jane", candidates[0].Name)
	assert.Equal(t, `She said "hi"`, candidates[1].Name)
	assert.Equal(t, "jane@example.com", candidates[0].Email)
}

func TestParseCSVMissingTrailingFields(t *testing.T) {
	payload := []byte("id,name,phone,email\nT1,Jane\n")

	candidates, err := importer.ParseCSV(payload)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Jane", candidates[0].Name)
	assert.Empty(t, candidates[0].Phone)
	assert.Empty(t, candidates[0].Email)
}

func TestParseCSVHeaderNormalization(t *testing.T) {
	// Mixed-case headers with spaces land on the same keys.
	payload := []byte("Ticket ID,Full Name,Ticket Type,Tickets\nBK-1,Jane Roe,VIP,3\n")

	candidates, err := importer.ParseCSV(payload)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "BK-1", c.ID)
	assert.Equal(t, "Jane Roe", c.Name)
	assert.Equal(t, "VIP", c.TicketType)
	require.NotNil(t, c.Quantity)
	assert.Equal(t, 3, *c.Quantity)
}

func TestParseCSVAliasPrecedence(t *testing.T) {
	// id beats booking_id, name beats customer_name.
	payload := []byte("booking_id,id,customer_name,name\nBOOK-7,REAL-1,Wrong,Right\n")

	candidates, err := importer.ParseCSV(payload)
	require.NoError(t, err)
	assert.Equal(t, "REAL-1", candidates[0].ID)
	assert.Equal(t, "Right", candidates[0].Name)
}

func TestParseCSVUnparsableNumbersLeftToDefaults(t *testing.T) {
	payload := []byte("id,name,quantity,amount\nT1,Jane,lots,free\n")

	candidates, err := importer.ParseCSV(payload)
	require.NoError(t, err)
	assert.Nil(t, candidates[0].Quantity)
	assert.Nil(t, candidates[0].AmountPaid)
}

func TestParseCSVHeaderOnlyFails(t *testing.T) {
	_, err := importer.ParseCSV([]byte("id,name,quantity\n\n"))
	assert.ErrorIs(t, err, importer.ErrParseFailed)

	_, err = importer.ParseCSV([]byte(""))
	assert.ErrorIs(t, err, importer.ErrParseFailed)
}

func TestParseJSONBareList(t *testing.T) {
	payload := []byte(`[{"id":"J1","name":"Jane","quantity":2,"amountPaid":400}]`)

	candidates, err := importer.ParseJSON(payload)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "J1", candidates[0].ID)
	require.NotNil(t, candidates[0].Quantity)
	assert.Equal(t, 2, *candidates[0].Quantity)
	require.NotNil(t, candidates[0].AmountPaid)
	assert.Equal(t, 400, *candidates[0].AmountPaid)
}

func TestParseJSONBackupFiltersWalkIns(t *testing.T) {
	payload := []byte(`{
		"config": {"eventName": "X"},
		"attendees": [
			{"id":"R1","name":"Pre","type":"PRE-REG","ticketType":"VIP"},
			{"id":"W1","name":"Door","type":"WALK-IN"},
			{"id":"R2","name":"Untagged"}
		]
	}`)

	candidates, err := importer.ParseJSON(payload)
	require.NoError(t, err)
	require.Len(t, candidates, 2, "walk-ins are never re-imported")
	assert.Equal(t, "R1", candidates[0].ID)
	assert.Equal(t, "VIP", candidates[0].TicketType, "backup ticketType key maps through")
	assert.Equal(t, "R2", candidates[1].ID)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := importer.ParseJSON([]byte("{not json"))
	assert.ErrorIs(t, err, importer.ErrParseFailed)

	_, err = importer.ParseJSON([]byte(`[]`))
	assert.ErrorIs(t, err, importer.ErrParseFailed)
}

func TestParseDispatchesOnDeclaredFormat(t *testing.T) {
	csv := []byte("id,name\nT1,Jane\n")

	candidates, err := importer.Parse(csv, "csv")
	require.NoError(t, err)
	assert.Len(t, candidates, 1)

	_, err = importer.Parse(csv, "xlsx")
	assert.ErrorIs(t, err, importer.ErrParseFailed)

	// No content sniffing: CSV bytes declared as JSON fail.
	_, err = importer.Parse(csv, "json")
	assert.ErrorIs(t, err, importer.ErrParseFailed)
}

func TestReconcileDefaults(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	candidates := []models.ImportCandidate{{}}

	additions := importer.Reconcile(candidates, nil, 255, now)
	require.Len(t, additions, 1)

	r := additions[0]
	assert.Equal(t, "IMP-1700000000000-0", r.ID)
	assert.Equal(t, "Unknown", r.Name)
	assert.Equal(t, "Regular", r.TicketType)
	assert.Equal(t, 1, r.Quantity)
	assert.Equal(t, 255, r.AmountPaid, "amount defaults to the configured unit price")
	assert.Equal(t, models.CategoryPreRegistered, r.Category)
	assert.False(t, r.CheckedIn)
	assert.Nil(t, r.CheckInTime)
}

func TestReconcileSkipsExistingIDs(t *testing.T) {
	existing := map[string]struct{}{"A1": {}}
	candidates := []models.ImportCandidate{
		{ID: "A1", Name: "Dup"},
		{ID: "A2", Name: "New"},
	}

	additions := importer.Reconcile(candidates, existing, 255, time.Now())
	require.Len(t, additions, 1)
	assert.Equal(t, "A2", additions[0].ID)
}

func TestReconcileIDCompareIsCaseSensitive(t *testing.T) {
	existing := map[string]struct{}{"A1": {}}
	candidates := []models.ImportCandidate{{ID: "a1", Name: "Lower"}}

	additions := importer.Reconcile(candidates, existing, 255, time.Now())
	require.Len(t, additions, 1, "merge compares ids byte-for-byte")
}

func TestReconcileSkipsInBatchDuplicates(t *testing.T) {
	candidates := []models.ImportCandidate{
		{ID: "A1", Name: "First"},
		{ID: "A1", Name: "Second"},
	}

	additions := importer.Reconcile(candidates, nil, 255, time.Now())
	require.Len(t, additions, 1)
	assert.Equal(t, "First", additions[0].Name)
}

func TestReconcileFloorsQuantityAndGuardsAmount(t *testing.T) {
	zero := 0
	negative := -50
	candidates := []models.ImportCandidate{
		{ID: "A1", Quantity: &zero, AmountPaid: &negative},
	}

	additions := importer.Reconcile(candidates, nil, 255, time.Now())
	require.Len(t, additions, 1)
	assert.Equal(t, 1, additions[0].Quantity)
	assert.Equal(t, 255, additions[0].AmountPaid)
}

func TestParseAndReconcileSingleRow(t *testing.T) {
	payload := []byte("id,name,quantity,amount\nA1,Jane,2,400\n")

	candidates, err := importer.ParseCSV(payload)
	require.NoError(t, err)

	additions := importer.Reconcile(candidates, nil, 255, time.Now())
	require.Len(t, additions, 1)

	r := additions[0]
	assert.Equal(t, "A1", r.ID)
	assert.Equal(t, "Jane", r.Name)
	assert.Equal(t, 2, r.Quantity)
	assert.Equal(t, 400, r.AmountPaid)
	assert.Equal(t, "Regular", r.TicketType)
	assert.Equal(t, models.CategoryPreRegistered, r.Category)
	assert.False(t, r.CheckedIn)
}
