package recommend

import (
	"testing"

	"dronemeds/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{Name: "Paracetamol", Description: "Pain relief and fever reducer tablet", Price: decimal.NewFromInt(30)},
		{Name: "Ibuprofen", Description: "Pain relief anti-inflammatory tablet", Price: decimal.NewFromInt(45)},
		{Name: "Cetirizine", Description: "Antihistamine for allergy relief", Price: decimal.NewFromInt(25)},
		{Name: "ORS Sachet", Description: "Oral rehydration salts for dehydration", Price: decimal.NewFromInt(20)},
		{Name: "Cough Syrup", Description: "Syrup for dry cough and throat irritation", Price: decimal.NewFromInt(90)},
		{Name: "Aspirin", Description: "Pain relief tablet for headache and fever", Price: decimal.NewFromInt(15)},
	}
}

func TestTokenize_DropsStopWordsAndShortTokens(t *testing.T) {
	tokens := tokenize("A tablet for the Pain, x 500mg")
	assert.Equal(t, []string{"tablet", "pain", "500mg"}, tokens)
}

func TestSimilarityMatrix_Shape(t *testing.T) {
	products := testCatalog()
	r := New(products)
	sim := r.Similarity()

	require.Len(t, sim, len(products))
	for i := range sim {
		require.Len(t, sim[i], len(products))
		assert.InDelta(t, 1.0, sim[i][i], 1e-9)
		for j := range sim[i] {
			assert.InDelta(t, sim[i][j], sim[j][i], 1e-12)
		}
	}
}

func TestSimilarityMatrix_EmptyDocumentScoresZero(t *testing.T) {
	r := New([]domain.Product{
		{Name: "Paracetamol", Description: "pain tablet"},
		{Name: "", Description: "the of"},
	})
	sim := r.Similarity()
	assert.Equal(t, 0.0, sim[1][1])
	assert.Equal(t, 0.0, sim[0][1])
}

func TestRecommend_OrderingAndExclusion(t *testing.T) {
	r := New(testCatalog())

	got := r.Recommend([]string{"Paracetamol"}, 2)

	require.Len(t, got, 2)
	names := []string{got[0].Name, got[1].Name}
	assert.NotContains(t, names, "Paracetamol")
	assert.ElementsMatch(t, []string{"Aspirin", "Ibuprofen"}, names)
	assert.Equal(t, "Aspirin", got[0].Name)
}

func TestRecommend_ScoresDescending(t *testing.T) {
	products := testCatalog()
	r := New(products)
	sim := r.Similarity()

	got := r.Recommend([]string{"Ibuprofen"}, 0)
	require.Len(t, got, DefaultLimit)

	index := make(map[string]int)
	for i, p := range products {
		index[p.Name] = i
	}
	for i := 1; i < len(got); i++ {
		prev := sim[index["Ibuprofen"]][index[got[i-1].Name]]
		cur := sim[index["Ibuprofen"]][index[got[i].Name]]
		assert.GreaterOrEqual(t, prev, cur)
	}
}

func TestRecommend_MultipleSelections(t *testing.T) {
	r := New(testCatalog())
	selected := []string{"Paracetamol", "Cough Syrup"}

	got := r.Recommend(selected, 10)

	assert.Len(t, got, 4)
	for _, p := range got {
		assert.NotContains(t, selected, p.Name)
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	products := []domain.Product{
		{Name: "Paracetamol", Description: "Pain relief tablet"},
		{Name: "Gauze Roll", Description: "Sterile bandage cotton"},
		{Name: "Thermometer", Description: "Digital temperature gauge"},
		{Name: "Face Mask", Description: "Disposable surgical mask"},
	}
	r := New(products)

	got := r.Recommend([]string{"Paracetamol"}, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "Gauze Roll", got[0].Name)
	assert.Equal(t, "Thermometer", got[1].Name)
	assert.Equal(t, "Face Mask", got[2].Name)
}

func TestRecommend_EmptyOrUnknownSelection(t *testing.T) {
	r := New(testCatalog())

	assert.Empty(t, r.Recommend(nil, 5))
	assert.Empty(t, r.Recommend([]string{"Unobtainium"}, 5))
}
