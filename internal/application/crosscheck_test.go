package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjackodds/internal/domain/cards"
	"blackjackodds/internal/domain/rules"
)

func TestMonteCarloCrossCheckSurrenderIsExactWithoutSampling(t *testing.T) {
	cfg := Config{Rule: RuleBJ, Counting: CountingTotal, Decks: 6}
	result, err := MonteCarloCrossCheck(cfg, 9, cards.Ace, intPtr(2), rules.ActionSurrender, 1000, 0.01)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Trials)
	assert.True(t, result.Pass)
	assert.Equal(t, -0.5, result.ExactValue)
	assert.Equal(t, -0.5, result.SampledMean)
}

func TestMonteCarloCrossCheckStandAgreesWithExactWithinWideBand(t *testing.T) {
	cfg := Config{Rule: RuleBJ, Counting: CountingTotal, Decks: 6}
	result, err := MonteCarloCrossCheck(cfg, cards.Ten, 6, intPtr(9), rules.ActionStand, 500, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 500, result.Trials)
	assert.GreaterOrEqual(t, result.StdError, 0.0)
	assert.True(t, result.Pass, "sampled mean %v should land within epsilon+CI of exact %v", result.SampledMean, result.ExactValue)
}

func TestMonteCarloCrossCheckRejectsUnsimulatedActions(t *testing.T) {
	cfg := Config{Rule: RuleBJ, Counting: CountingTotal, Decks: 6}
	_, err := MonteCarloCrossCheck(cfg, 8, 6, intPtr(8), rules.ActionSplit, 10, 0.1)
	require.Error(t, err)
}

func TestMonteCarloCrossCheckRejectsIllegalAction(t *testing.T) {
	cfg := Config{Rule: RuleBJ, Counting: CountingTotal, Decks: 6}
	_, err := MonteCarloCrossCheck(cfg, cards.Ace, 9, intPtr(cards.Ten), rules.ActionHit, 10, 0.1)
	require.Error(t, err)
}

func intPtr(v int) *int { return &v }
