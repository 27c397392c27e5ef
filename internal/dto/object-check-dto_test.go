package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspection-system/internal/entities"
)

func TestCreateInspectorRef(t *testing.T) {
	assert.False(t, CreateObjectCheckDTO{InspectorID: 0}.InspectorRef().Valid)
	assert.Equal(t, null.Int64From(4), CreateObjectCheckDTO{InspectorID: 4}.InspectorRef())
}

func TestUpdateToPatch(t *testing.T) {
	var d UpdateObjectCheckDTO
	require.NoError(t, json.Unmarshal([]byte(`{"inspector_id":0,"status":"fulfilled"}`), &d))

	patch := d.ToPatch()
	assert.Nil(t, patch.CheckTypeID)
	assert.Nil(t, patch.TemplateID)
	require.NotNil(t, patch.InspectorID)
	assert.False(t, patch.InspectorID.Valid)

	var foreign UpdateObjectCheckDTO
	require.NoError(t, json.Unmarshal([]byte(`{"company_id":5,"link_url":"x"}`), &foreign))
	assert.True(t, foreign.ToPatch().IsEmpty())
}

func TestNewObjectCheckDTO(t *testing.T) {
	view := entities.ObjectCheckView{
		ObjectCheck: entities.ObjectCheck{
			ID:               1,
			Status:           entities.StatusFulfilled,
			Comments:         null.StringFrom("не показывается"),
			DateOfInspection: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		TemplateName: "Аудит склада",
	}

	res := NewObjectCheckDTO(view)
	assert.Equal(t, "fulfilled", res.Status)
	assert.Equal(t, "2030-01-02", res.DateOfInspection)
	assert.False(t, res.Comments.Valid)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"inspector_id":null`)
}

func TestObjectCheckListDTOIsFlat(t *testing.T) {
	raw, err := json.Marshal(ObjectCheckListDTO{Checks: []ObjectCheckDTO{}})
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, key := range []string{"checks", "items", "page", "pages", "next", "prev"} {
		assert.Contains(t, body, key)
	}
}
