// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fsun/ski-results/gen/ent/competition"
	"github.com/fsun/ski-results/gen/ent/event"
	"github.com/fsun/ski-results/gen/ent/predicate"
	"github.com/fsun/ski-results/gen/ent/processedfile"
	"github.com/fsun/ski-results/gen/ent/raceresult"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompetition   = "Competition"
	TypeEvent         = "Event"
	TypeProcessedFile = "ProcessedFile"
	TypeRaceResult    = "RaceResult"
)

// CompetitionMutation represents an operation that mutates the Competition nodes in the graph.
type CompetitionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	season        *string
	name          *string
	venue         *string
	start_date    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	events        map[int]struct{}
	removedevents map[int]struct{}
	clearedevents bool
	done          bool
	oldValue      func(context.Context) (*Competition, error)
	predicates    []predicate.Competition
}

var _ ent.Mutation = (*CompetitionMutation)(nil)

// competitionOption allows management of the mutation configuration using functional options.
type competitionOption func(*CompetitionMutation)

// newCompetitionMutation creates new mutation for the Competition entity.
func newCompetitionMutation(c config, op Op, opts ...competitionOption) *CompetitionMutation {
	m := &CompetitionMutation{
		config:        c,
		op:            op,
		typ:           TypeCompetition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompetitionID sets the ID field of the mutation.
func withCompetitionID(id int) competitionOption {
	return func(m *CompetitionMutation) {
		var (
			err   error
			once  sync.Once
			value *Competition
		)
		m.oldValue = func(ctx context.Context) (*Competition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Competition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompetition sets the old Competition of the mutation.
func withCompetition(node *Competition) competitionOption {
	return func(m *CompetitionMutation) {
		m.oldValue = func(context.Context) (*Competition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompetitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompetitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompetitionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompetitionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Competition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSeason sets the "season" field.
func (m *CompetitionMutation) SetSeason(s string) {
	m.season = &s
}

// Season returns the value of the "season" field in the mutation.
func (m *CompetitionMutation) Season() (r string, exists bool) {
	v := m.season
	if v == nil {
		return
	}
	return *v, true
}

// OldSeason returns the old "season" field's value of the Competition entity.
// If the Competition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitionMutation) OldSeason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeason: %w", err)
	}
	return oldValue.Season, nil
}

// ResetSeason resets all changes to the "season" field.
func (m *CompetitionMutation) ResetSeason() {
	m.season = nil
}

// SetName sets the "name" field.
func (m *CompetitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompetitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Competition entity.
// If the Competition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompetitionMutation) ResetName() {
	m.name = nil
}

// SetVenue sets the "venue" field.
func (m *CompetitionMutation) SetVenue(s string) {
	m.venue = &s
}

// Venue returns the value of the "venue" field in the mutation.
func (m *CompetitionMutation) Venue() (r string, exists bool) {
	v := m.venue
	if v == nil {
		return
	}
	return *v, true
}

// OldVenue returns the old "venue" field's value of the Competition entity.
// If the Competition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitionMutation) OldVenue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVenue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVenue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVenue: %w", err)
	}
	return oldValue.Venue, nil
}

// ClearVenue clears the value of the "venue" field.
func (m *CompetitionMutation) ClearVenue() {
	m.venue = nil
	m.clearedFields[competition.FieldVenue] = struct{}{}
}

// VenueCleared returns if the "venue" field was cleared in this mutation.
func (m *CompetitionMutation) VenueCleared() bool {
	_, ok := m.clearedFields[competition.FieldVenue]
	return ok
}

// ResetVenue resets all changes to the "venue" field.
func (m *CompetitionMutation) ResetVenue() {
	m.venue = nil
	delete(m.clearedFields, competition.FieldVenue)
}

// SetStartDate sets the "start_date" field.
func (m *CompetitionMutation) SetStartDate(s string) {
	m.start_date = &s
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *CompetitionMutation) StartDate() (r string, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Competition entity.
// If the Competition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitionMutation) OldStartDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *CompetitionMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[competition.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *CompetitionMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[competition.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *CompetitionMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, competition.FieldStartDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompetitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompetitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Competition entity.
// If the Competition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompetitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *CompetitionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *CompetitionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *CompetitionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *CompetitionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *CompetitionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *CompetitionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *CompetitionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the CompetitionMutation builder.
func (m *CompetitionMutation) Where(ps ...predicate.Competition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompetitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompetitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Competition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompetitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompetitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Competition).
func (m *CompetitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompetitionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.season != nil {
		fields = append(fields, competition.FieldSeason)
	}
	if m.name != nil {
		fields = append(fields, competition.FieldName)
	}
	if m.venue != nil {
		fields = append(fields, competition.FieldVenue)
	}
	if m.start_date != nil {
		fields = append(fields, competition.FieldStartDate)
	}
	if m.created_at != nil {
		fields = append(fields, competition.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompetitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case competition.FieldSeason:
		return m.Season()
	case competition.FieldName:
		return m.Name()
	case competition.FieldVenue:
		return m.Venue()
	case competition.FieldStartDate:
		return m.StartDate()
	case competition.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompetitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case competition.FieldSeason:
		return m.OldSeason(ctx)
	case competition.FieldName:
		return m.OldName(ctx)
	case competition.FieldVenue:
		return m.OldVenue(ctx)
	case competition.FieldStartDate:
		return m.OldStartDate(ctx)
	case competition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Competition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompetitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case competition.FieldSeason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeason(v)
		return nil
	case competition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case competition.FieldVenue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVenue(v)
		return nil
	case competition.FieldStartDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case competition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Competition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompetitionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompetitionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompetitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Competition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompetitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(competition.FieldVenue) {
		fields = append(fields, competition.FieldVenue)
	}
	if m.FieldCleared(competition.FieldStartDate) {
		fields = append(fields, competition.FieldStartDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompetitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompetitionMutation) ClearField(name string) error {
	switch name {
	case competition.FieldVenue:
		m.ClearVenue()
		return nil
	case competition.FieldStartDate:
		m.ClearStartDate()
		return nil
	}
	return fmt.Errorf("unknown Competition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompetitionMutation) ResetField(name string) error {
	switch name {
	case competition.FieldSeason:
		m.ResetSeason()
		return nil
	case competition.FieldName:
		m.ResetName()
		return nil
	case competition.FieldVenue:
		m.ResetVenue()
		return nil
	case competition.FieldStartDate:
		m.ResetStartDate()
		return nil
	case competition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Competition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompetitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, competition.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompetitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case competition.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompetitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, competition.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompetitionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case competition.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompetitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, competition.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompetitionMutation) EdgeCleared(name string) bool {
	switch name {
	case competition.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompetitionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Competition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompetitionMutation) ResetEdge(name string) error {
	switch name {
	case competition.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Competition edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	discipline         *string
	gender             *string
	age_group          *string
	round_type         *string
	event_date         *string
	source_file        *string
	needs_review       *bool
	review_notes       *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	competition        *int
	clearedcompetition bool
	results            map[int]struct{}
	removedresults     map[int]struct{}
	clearedresults     bool
	done               bool
	oldValue           func(context.Context) (*Event, error)
	predicates         []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompetitionID sets the "competition_id" field.
func (m *EventMutation) SetCompetitionID(i int) {
	m.competition = &i
}

// CompetitionID returns the value of the "competition_id" field in the mutation.
func (m *EventMutation) CompetitionID() (r int, exists bool) {
	v := m.competition
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitionID returns the old "competition_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCompetitionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitionID: %w", err)
	}
	return oldValue.CompetitionID, nil
}

// ResetCompetitionID resets all changes to the "competition_id" field.
func (m *EventMutation) ResetCompetitionID() {
	m.competition = nil
}

// SetDiscipline sets the "discipline" field.
func (m *EventMutation) SetDiscipline(s string) {
	m.discipline = &s
}

// Discipline returns the value of the "discipline" field in the mutation.
func (m *EventMutation) Discipline() (r string, exists bool) {
	v := m.discipline
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscipline returns the old "discipline" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDiscipline(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscipline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscipline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscipline: %w", err)
	}
	return oldValue.Discipline, nil
}

// ResetDiscipline resets all changes to the "discipline" field.
func (m *EventMutation) ResetDiscipline() {
	m.discipline = nil
}

// SetGender sets the "gender" field.
func (m *EventMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *EventMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *EventMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[event.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *EventMutation) GenderCleared() bool {
	_, ok := m.clearedFields[event.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *EventMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, event.FieldGender)
}

// SetAgeGroup sets the "age_group" field.
func (m *EventMutation) SetAgeGroup(s string) {
	m.age_group = &s
}

// AgeGroup returns the value of the "age_group" field in the mutation.
func (m *EventMutation) AgeGroup() (r string, exists bool) {
	v := m.age_group
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeGroup returns the old "age_group" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAgeGroup(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeGroup: %w", err)
	}
	return oldValue.AgeGroup, nil
}

// ClearAgeGroup clears the value of the "age_group" field.
func (m *EventMutation) ClearAgeGroup() {
	m.age_group = nil
	m.clearedFields[event.FieldAgeGroup] = struct{}{}
}

// AgeGroupCleared returns if the "age_group" field was cleared in this mutation.
func (m *EventMutation) AgeGroupCleared() bool {
	_, ok := m.clearedFields[event.FieldAgeGroup]
	return ok
}

// ResetAgeGroup resets all changes to the "age_group" field.
func (m *EventMutation) ResetAgeGroup() {
	m.age_group = nil
	delete(m.clearedFields, event.FieldAgeGroup)
}

// SetRoundType sets the "round_type" field.
func (m *EventMutation) SetRoundType(s string) {
	m.round_type = &s
}

// RoundType returns the value of the "round_type" field in the mutation.
func (m *EventMutation) RoundType() (r string, exists bool) {
	v := m.round_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundType returns the old "round_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRoundType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundType: %w", err)
	}
	return oldValue.RoundType, nil
}

// ClearRoundType clears the value of the "round_type" field.
func (m *EventMutation) ClearRoundType() {
	m.round_type = nil
	m.clearedFields[event.FieldRoundType] = struct{}{}
}

// RoundTypeCleared returns if the "round_type" field was cleared in this mutation.
func (m *EventMutation) RoundTypeCleared() bool {
	_, ok := m.clearedFields[event.FieldRoundType]
	return ok
}

// ResetRoundType resets all changes to the "round_type" field.
func (m *EventMutation) ResetRoundType() {
	m.round_type = nil
	delete(m.clearedFields, event.FieldRoundType)
}

// SetEventDate sets the "event_date" field.
func (m *EventMutation) SetEventDate(s string) {
	m.event_date = &s
}

// EventDate returns the value of the "event_date" field in the mutation.
func (m *EventMutation) EventDate() (r string, exists bool) {
	v := m.event_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEventDate returns the old "event_date" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventDate: %w", err)
	}
	return oldValue.EventDate, nil
}

// ClearEventDate clears the value of the "event_date" field.
func (m *EventMutation) ClearEventDate() {
	m.event_date = nil
	m.clearedFields[event.FieldEventDate] = struct{}{}
}

// EventDateCleared returns if the "event_date" field was cleared in this mutation.
func (m *EventMutation) EventDateCleared() bool {
	_, ok := m.clearedFields[event.FieldEventDate]
	return ok
}

// ResetEventDate resets all changes to the "event_date" field.
func (m *EventMutation) ResetEventDate() {
	m.event_date = nil
	delete(m.clearedFields, event.FieldEventDate)
}

// SetSourceFile sets the "source_file" field.
func (m *EventMutation) SetSourceFile(s string) {
	m.source_file = &s
}

// SourceFile returns the value of the "source_file" field in the mutation.
func (m *EventMutation) SourceFile() (r string, exists bool) {
	v := m.source_file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFile returns the old "source_file" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSourceFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFile: %w", err)
	}
	return oldValue.SourceFile, nil
}

// ResetSourceFile resets all changes to the "source_file" field.
func (m *EventMutation) ResetSourceFile() {
	m.source_file = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *EventMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *EventMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *EventMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetReviewNotes sets the "review_notes" field.
func (m *EventMutation) SetReviewNotes(s string) {
	m.review_notes = &s
}

// ReviewNotes returns the value of the "review_notes" field in the mutation.
func (m *EventMutation) ReviewNotes() (r string, exists bool) {
	v := m.review_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewNotes returns the old "review_notes" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldReviewNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewNotes: %w", err)
	}
	return oldValue.ReviewNotes, nil
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (m *EventMutation) ClearReviewNotes() {
	m.review_notes = nil
	m.clearedFields[event.FieldReviewNotes] = struct{}{}
}

// ReviewNotesCleared returns if the "review_notes" field was cleared in this mutation.
func (m *EventMutation) ReviewNotesCleared() bool {
	_, ok := m.clearedFields[event.FieldReviewNotes]
	return ok
}

// ResetReviewNotes resets all changes to the "review_notes" field.
func (m *EventMutation) ResetReviewNotes() {
	m.review_notes = nil
	delete(m.clearedFields, event.FieldReviewNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCompetition clears the "competition" edge to the Competition entity.
func (m *EventMutation) ClearCompetition() {
	m.clearedcompetition = true
	m.clearedFields[event.FieldCompetitionID] = struct{}{}
}

// CompetitionCleared reports if the "competition" edge to the Competition entity was cleared.
func (m *EventMutation) CompetitionCleared() bool {
	return m.clearedcompetition
}

// CompetitionIDs returns the "competition" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompetitionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) CompetitionIDs() (ids []int) {
	if id := m.competition; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompetition resets all changes to the "competition" edge.
func (m *EventMutation) ResetCompetition() {
	m.competition = nil
	m.clearedcompetition = false
}

// AddResultIDs adds the "results" edge to the RaceResult entity by ids.
func (m *EventMutation) AddResultIDs(ids ...int) {
	if m.results == nil {
		m.results = make(map[int]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the RaceResult entity.
func (m *EventMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the RaceResult entity was cleared.
func (m *EventMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the RaceResult entity by IDs.
func (m *EventMutation) RemoveResultIDs(ids ...int) {
	if m.removedresults == nil {
		m.removedresults = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the RaceResult entity.
func (m *EventMutation) RemovedResultsIDs() (ids []int) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *EventMutation) ResultsIDs() (ids []int) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *EventMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.competition != nil {
		fields = append(fields, event.FieldCompetitionID)
	}
	if m.discipline != nil {
		fields = append(fields, event.FieldDiscipline)
	}
	if m.gender != nil {
		fields = append(fields, event.FieldGender)
	}
	if m.age_group != nil {
		fields = append(fields, event.FieldAgeGroup)
	}
	if m.round_type != nil {
		fields = append(fields, event.FieldRoundType)
	}
	if m.event_date != nil {
		fields = append(fields, event.FieldEventDate)
	}
	if m.source_file != nil {
		fields = append(fields, event.FieldSourceFile)
	}
	if m.needs_review != nil {
		fields = append(fields, event.FieldNeedsReview)
	}
	if m.review_notes != nil {
		fields = append(fields, event.FieldReviewNotes)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldCompetitionID:
		return m.CompetitionID()
	case event.FieldDiscipline:
		return m.Discipline()
	case event.FieldGender:
		return m.Gender()
	case event.FieldAgeGroup:
		return m.AgeGroup()
	case event.FieldRoundType:
		return m.RoundType()
	case event.FieldEventDate:
		return m.EventDate()
	case event.FieldSourceFile:
		return m.SourceFile()
	case event.FieldNeedsReview:
		return m.NeedsReview()
	case event.FieldReviewNotes:
		return m.ReviewNotes()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldCompetitionID:
		return m.OldCompetitionID(ctx)
	case event.FieldDiscipline:
		return m.OldDiscipline(ctx)
	case event.FieldGender:
		return m.OldGender(ctx)
	case event.FieldAgeGroup:
		return m.OldAgeGroup(ctx)
	case event.FieldRoundType:
		return m.OldRoundType(ctx)
	case event.FieldEventDate:
		return m.OldEventDate(ctx)
	case event.FieldSourceFile:
		return m.OldSourceFile(ctx)
	case event.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case event.FieldReviewNotes:
		return m.OldReviewNotes(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldCompetitionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitionID(v)
		return nil
	case event.FieldDiscipline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscipline(v)
		return nil
	case event.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case event.FieldAgeGroup:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeGroup(v)
		return nil
	case event.FieldRoundType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundType(v)
		return nil
	case event.FieldEventDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventDate(v)
		return nil
	case event.FieldSourceFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFile(v)
		return nil
	case event.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case event.FieldReviewNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewNotes(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldGender) {
		fields = append(fields, event.FieldGender)
	}
	if m.FieldCleared(event.FieldAgeGroup) {
		fields = append(fields, event.FieldAgeGroup)
	}
	if m.FieldCleared(event.FieldRoundType) {
		fields = append(fields, event.FieldRoundType)
	}
	if m.FieldCleared(event.FieldEventDate) {
		fields = append(fields, event.FieldEventDate)
	}
	if m.FieldCleared(event.FieldReviewNotes) {
		fields = append(fields, event.FieldReviewNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldGender:
		m.ClearGender()
		return nil
	case event.FieldAgeGroup:
		m.ClearAgeGroup()
		return nil
	case event.FieldRoundType:
		m.ClearRoundType()
		return nil
	case event.FieldEventDate:
		m.ClearEventDate()
		return nil
	case event.FieldReviewNotes:
		m.ClearReviewNotes()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldCompetitionID:
		m.ResetCompetitionID()
		return nil
	case event.FieldDiscipline:
		m.ResetDiscipline()
		return nil
	case event.FieldGender:
		m.ResetGender()
		return nil
	case event.FieldAgeGroup:
		m.ResetAgeGroup()
		return nil
	case event.FieldRoundType:
		m.ResetRoundType()
		return nil
	case event.FieldEventDate:
		m.ResetEventDate()
		return nil
	case event.FieldSourceFile:
		m.ResetSourceFile()
		return nil
	case event.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case event.FieldReviewNotes:
		m.ResetReviewNotes()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.competition != nil {
		edges = append(edges, event.EdgeCompetition)
	}
	if m.results != nil {
		edges = append(edges, event.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeCompetition:
		if id := m.competition; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedresults != nil {
		edges = append(edges, event.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompetition {
		edges = append(edges, event.EdgeCompetition)
	}
	if m.clearedresults {
		edges = append(edges, event.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeCompetition:
		return m.clearedcompetition
	case event.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeCompetition:
		m.ClearCompetition()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeCompetition:
		m.ResetCompetition()
		return nil
	case event.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// ProcessedFileMutation represents an operation that mutates the ProcessedFile nodes in the graph.
type ProcessedFileMutation struct {
	config
	op            Op
	typ           string
	id            *int
	file_key      *string
	file_type     *string
	status        *string
	error_message *string
	processed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProcessedFile, error)
	predicates    []predicate.ProcessedFile
}

var _ ent.Mutation = (*ProcessedFileMutation)(nil)

// processedfileOption allows management of the mutation configuration using functional options.
type processedfileOption func(*ProcessedFileMutation)

// newProcessedFileMutation creates new mutation for the ProcessedFile entity.
func newProcessedFileMutation(c config, op Op, opts ...processedfileOption) *ProcessedFileMutation {
	m := &ProcessedFileMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessedFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessedFileID sets the ID field of the mutation.
func withProcessedFileID(id int) processedfileOption {
	return func(m *ProcessedFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessedFile
		)
		m.oldValue = func(ctx context.Context) (*ProcessedFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessedFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessedFile sets the old ProcessedFile of the mutation.
func withProcessedFile(node *ProcessedFile) processedfileOption {
	return func(m *ProcessedFileMutation) {
		m.oldValue = func(context.Context) (*ProcessedFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessedFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessedFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessedFileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessedFileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessedFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileKey sets the "file_key" field.
func (m *ProcessedFileMutation) SetFileKey(s string) {
	m.file_key = &s
}

// FileKey returns the value of the "file_key" field in the mutation.
func (m *ProcessedFileMutation) FileKey() (r string, exists bool) {
	v := m.file_key
	if v == nil {
		return
	}
	return *v, true
}

// OldFileKey returns the old "file_key" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldFileKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileKey: %w", err)
	}
	return oldValue.FileKey, nil
}

// ResetFileKey resets all changes to the "file_key" field.
func (m *ProcessedFileMutation) ResetFileKey() {
	m.file_key = nil
}

// SetFileType sets the "file_type" field.
func (m *ProcessedFileMutation) SetFileType(s string) {
	m.file_type = &s
}

// FileType returns the value of the "file_type" field in the mutation.
func (m *ProcessedFileMutation) FileType() (r string, exists bool) {
	v := m.file_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFileType returns the old "file_type" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldFileType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileType: %w", err)
	}
	return oldValue.FileType, nil
}

// ClearFileType clears the value of the "file_type" field.
func (m *ProcessedFileMutation) ClearFileType() {
	m.file_type = nil
	m.clearedFields[processedfile.FieldFileType] = struct{}{}
}

// FileTypeCleared returns if the "file_type" field was cleared in this mutation.
func (m *ProcessedFileMutation) FileTypeCleared() bool {
	_, ok := m.clearedFields[processedfile.FieldFileType]
	return ok
}

// ResetFileType resets all changes to the "file_type" field.
func (m *ProcessedFileMutation) ResetFileType() {
	m.file_type = nil
	delete(m.clearedFields, processedfile.FieldFileType)
}

// SetStatus sets the "status" field.
func (m *ProcessedFileMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessedFileMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessedFileMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessedFileMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessedFileMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessedFileMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processedfile.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessedFileMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processedfile.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessedFileMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processedfile.FieldErrorMessage)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ProcessedFileMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ProcessedFileMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ProcessedFile entity.
// If the ProcessedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedFileMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ProcessedFileMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// Where appends a list predicates to the ProcessedFileMutation builder.
func (m *ProcessedFileMutation) Where(ps ...predicate.ProcessedFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessedFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessedFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessedFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessedFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessedFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessedFile).
func (m *ProcessedFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessedFileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.file_key != nil {
		fields = append(fields, processedfile.FieldFileKey)
	}
	if m.file_type != nil {
		fields = append(fields, processedfile.FieldFileType)
	}
	if m.status != nil {
		fields = append(fields, processedfile.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, processedfile.FieldErrorMessage)
	}
	if m.processed_at != nil {
		fields = append(fields, processedfile.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessedFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processedfile.FieldFileKey:
		return m.FileKey()
	case processedfile.FieldFileType:
		return m.FileType()
	case processedfile.FieldStatus:
		return m.Status()
	case processedfile.FieldErrorMessage:
		return m.ErrorMessage()
	case processedfile.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessedFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processedfile.FieldFileKey:
		return m.OldFileKey(ctx)
	case processedfile.FieldFileType:
		return m.OldFileType(ctx)
	case processedfile.FieldStatus:
		return m.OldStatus(ctx)
	case processedfile.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case processedfile.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessedFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processedfile.FieldFileKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileKey(v)
		return nil
	case processedfile.FieldFileType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileType(v)
		return nil
	case processedfile.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processedfile.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case processedfile.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessedFileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessedFileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessedFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessedFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processedfile.FieldFileType) {
		fields = append(fields, processedfile.FieldFileType)
	}
	if m.FieldCleared(processedfile.FieldErrorMessage) {
		fields = append(fields, processedfile.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessedFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessedFileMutation) ClearField(name string) error {
	switch name {
	case processedfile.FieldFileType:
		m.ClearFileType()
		return nil
	case processedfile.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ProcessedFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessedFileMutation) ResetField(name string) error {
	switch name {
	case processedfile.FieldFileKey:
		m.ResetFileKey()
		return nil
	case processedfile.FieldFileType:
		m.ResetFileType()
		return nil
	case processedfile.FieldStatus:
		m.ResetStatus()
		return nil
	case processedfile.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case processedfile.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessedFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessedFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessedFileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessedFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessedFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessedFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessedFileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessedFileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessedFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessedFileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessedFile edge %s", name)
}

// RaceResultMutation represents an operation that mutates the RaceResult nodes in the graph.
type RaceResultMutation struct {
	config
	op               Op
	typ              string
	id               *int
	rank             *int
	addrank          *int
	bib              *string
	name             *string
	name_pinyin      *string
	team             *string
	run1_time        *string
	run2_time        *string
	total_time       *string
	time_diff        *string
	run1_seconds     *float64
	addrun1_seconds  *float64
	run2_seconds     *float64
	addrun2_seconds  *float64
	total_seconds    *float64
	addtotal_seconds *float64
	status           *string
	clearedFields    map[string]struct{}
	event            *int
	clearedevent     bool
	done             bool
	oldValue         func(context.Context) (*RaceResult, error)
	predicates       []predicate.RaceResult
}

var _ ent.Mutation = (*RaceResultMutation)(nil)

// raceresultOption allows management of the mutation configuration using functional options.
type raceresultOption func(*RaceResultMutation)

// newRaceResultMutation creates new mutation for the RaceResult entity.
func newRaceResultMutation(c config, op Op, opts ...raceresultOption) *RaceResultMutation {
	m := &RaceResultMutation{
		config:        c,
		op:            op,
		typ:           TypeRaceResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRaceResultID sets the ID field of the mutation.
func withRaceResultID(id int) raceresultOption {
	return func(m *RaceResultMutation) {
		var (
			err   error
			once  sync.Once
			value *RaceResult
		)
		m.oldValue = func(ctx context.Context) (*RaceResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RaceResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRaceResult sets the old RaceResult of the mutation.
func withRaceResult(node *RaceResult) raceresultOption {
	return func(m *RaceResultMutation) {
		m.oldValue = func(context.Context) (*RaceResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RaceResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RaceResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RaceResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RaceResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RaceResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *RaceResultMutation) SetEventID(i int) {
	m.event = &i
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *RaceResultMutation) EventID() (r int, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *RaceResultMutation) ResetEventID() {
	m.event = nil
}

// SetRank sets the "rank" field.
func (m *RaceResultMutation) SetRank(i int) {
	m.rank = &i
	m.addrank = nil
}

// Rank returns the value of the "rank" field in the mutation.
func (m *RaceResultMutation) Rank() (r int, exists bool) {
	v := m.rank
	if v == nil {
		return
	}
	return *v, true
}

// OldRank returns the old "rank" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldRank(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRank: %w", err)
	}
	return oldValue.Rank, nil
}

// AddRank adds i to the "rank" field.
func (m *RaceResultMutation) AddRank(i int) {
	if m.addrank != nil {
		*m.addrank += i
	} else {
		m.addrank = &i
	}
}

// AddedRank returns the value that was added to the "rank" field in this mutation.
func (m *RaceResultMutation) AddedRank() (r int, exists bool) {
	v := m.addrank
	if v == nil {
		return
	}
	return *v, true
}

// ClearRank clears the value of the "rank" field.
func (m *RaceResultMutation) ClearRank() {
	m.rank = nil
	m.addrank = nil
	m.clearedFields[raceresult.FieldRank] = struct{}{}
}

// RankCleared returns if the "rank" field was cleared in this mutation.
func (m *RaceResultMutation) RankCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldRank]
	return ok
}

// ResetRank resets all changes to the "rank" field.
func (m *RaceResultMutation) ResetRank() {
	m.rank = nil
	m.addrank = nil
	delete(m.clearedFields, raceresult.FieldRank)
}

// SetBib sets the "bib" field.
func (m *RaceResultMutation) SetBib(s string) {
	m.bib = &s
}

// Bib returns the value of the "bib" field in the mutation.
func (m *RaceResultMutation) Bib() (r string, exists bool) {
	v := m.bib
	if v == nil {
		return
	}
	return *v, true
}

// OldBib returns the old "bib" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldBib(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBib is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBib requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBib: %w", err)
	}
	return oldValue.Bib, nil
}

// ClearBib clears the value of the "bib" field.
func (m *RaceResultMutation) ClearBib() {
	m.bib = nil
	m.clearedFields[raceresult.FieldBib] = struct{}{}
}

// BibCleared returns if the "bib" field was cleared in this mutation.
func (m *RaceResultMutation) BibCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldBib]
	return ok
}

// ResetBib resets all changes to the "bib" field.
func (m *RaceResultMutation) ResetBib() {
	m.bib = nil
	delete(m.clearedFields, raceresult.FieldBib)
}

// SetName sets the "name" field.
func (m *RaceResultMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RaceResultMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RaceResultMutation) ResetName() {
	m.name = nil
}

// SetNamePinyin sets the "name_pinyin" field.
func (m *RaceResultMutation) SetNamePinyin(s string) {
	m.name_pinyin = &s
}

// NamePinyin returns the value of the "name_pinyin" field in the mutation.
func (m *RaceResultMutation) NamePinyin() (r string, exists bool) {
	v := m.name_pinyin
	if v == nil {
		return
	}
	return *v, true
}

// OldNamePinyin returns the old "name_pinyin" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldNamePinyin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNamePinyin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNamePinyin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNamePinyin: %w", err)
	}
	return oldValue.NamePinyin, nil
}

// ClearNamePinyin clears the value of the "name_pinyin" field.
func (m *RaceResultMutation) ClearNamePinyin() {
	m.name_pinyin = nil
	m.clearedFields[raceresult.FieldNamePinyin] = struct{}{}
}

// NamePinyinCleared returns if the "name_pinyin" field was cleared in this mutation.
func (m *RaceResultMutation) NamePinyinCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldNamePinyin]
	return ok
}

// ResetNamePinyin resets all changes to the "name_pinyin" field.
func (m *RaceResultMutation) ResetNamePinyin() {
	m.name_pinyin = nil
	delete(m.clearedFields, raceresult.FieldNamePinyin)
}

// SetTeam sets the "team" field.
func (m *RaceResultMutation) SetTeam(s string) {
	m.team = &s
}

// Team returns the value of the "team" field in the mutation.
func (m *RaceResultMutation) Team() (r string, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeam returns the old "team" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldTeam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeam: %w", err)
	}
	return oldValue.Team, nil
}

// ClearTeam clears the value of the "team" field.
func (m *RaceResultMutation) ClearTeam() {
	m.team = nil
	m.clearedFields[raceresult.FieldTeam] = struct{}{}
}

// TeamCleared returns if the "team" field was cleared in this mutation.
func (m *RaceResultMutation) TeamCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldTeam]
	return ok
}

// ResetTeam resets all changes to the "team" field.
func (m *RaceResultMutation) ResetTeam() {
	m.team = nil
	delete(m.clearedFields, raceresult.FieldTeam)
}

// SetRun1Time sets the "run1_time" field.
func (m *RaceResultMutation) SetRun1Time(s string) {
	m.run1_time = &s
}

// Run1Time returns the value of the "run1_time" field in the mutation.
func (m *RaceResultMutation) Run1Time() (r string, exists bool) {
	v := m.run1_time
	if v == nil {
		return
	}
	return *v, true
}

// OldRun1Time returns the old "run1_time" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldRun1Time(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRun1Time is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRun1Time requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRun1Time: %w", err)
	}
	return oldValue.Run1Time, nil
}

// ClearRun1Time clears the value of the "run1_time" field.
func (m *RaceResultMutation) ClearRun1Time() {
	m.run1_time = nil
	m.clearedFields[raceresult.FieldRun1Time] = struct{}{}
}

// Run1TimeCleared returns if the "run1_time" field was cleared in this mutation.
func (m *RaceResultMutation) Run1TimeCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldRun1Time]
	return ok
}

// ResetRun1Time resets all changes to the "run1_time" field.
func (m *RaceResultMutation) ResetRun1Time() {
	m.run1_time = nil
	delete(m.clearedFields, raceresult.FieldRun1Time)
}

// SetRun2Time sets the "run2_time" field.
func (m *RaceResultMutation) SetRun2Time(s string) {
	m.run2_time = &s
}

// Run2Time returns the value of the "run2_time" field in the mutation.
func (m *RaceResultMutation) Run2Time() (r string, exists bool) {
	v := m.run2_time
	if v == nil {
		return
	}
	return *v, true
}

// OldRun2Time returns the old "run2_time" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldRun2Time(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRun2Time is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRun2Time requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRun2Time: %w", err)
	}
	return oldValue.Run2Time, nil
}

// ClearRun2Time clears the value of the "run2_time" field.
func (m *RaceResultMutation) ClearRun2Time() {
	m.run2_time = nil
	m.clearedFields[raceresult.FieldRun2Time] = struct{}{}
}

// Run2TimeCleared returns if the "run2_time" field was cleared in this mutation.
func (m *RaceResultMutation) Run2TimeCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldRun2Time]
	return ok
}

// ResetRun2Time resets all changes to the "run2_time" field.
func (m *RaceResultMutation) ResetRun2Time() {
	m.run2_time = nil
	delete(m.clearedFields, raceresult.FieldRun2Time)
}

// SetTotalTime sets the "total_time" field.
func (m *RaceResultMutation) SetTotalTime(s string) {
	m.total_time = &s
}

// TotalTime returns the value of the "total_time" field in the mutation.
func (m *RaceResultMutation) TotalTime() (r string, exists bool) {
	v := m.total_time
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTime returns the old "total_time" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldTotalTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTime: %w", err)
	}
	return oldValue.TotalTime, nil
}

// ClearTotalTime clears the value of the "total_time" field.
func (m *RaceResultMutation) ClearTotalTime() {
	m.total_time = nil
	m.clearedFields[raceresult.FieldTotalTime] = struct{}{}
}

// TotalTimeCleared returns if the "total_time" field was cleared in this mutation.
func (m *RaceResultMutation) TotalTimeCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldTotalTime]
	return ok
}

// ResetTotalTime resets all changes to the "total_time" field.
func (m *RaceResultMutation) ResetTotalTime() {
	m.total_time = nil
	delete(m.clearedFields, raceresult.FieldTotalTime)
}

// SetTimeDiff sets the "time_diff" field.
func (m *RaceResultMutation) SetTimeDiff(s string) {
	m.time_diff = &s
}

// TimeDiff returns the value of the "time_diff" field in the mutation.
func (m *RaceResultMutation) TimeDiff() (r string, exists bool) {
	v := m.time_diff
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeDiff returns the old "time_diff" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldTimeDiff(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeDiff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeDiff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeDiff: %w", err)
	}
	return oldValue.TimeDiff, nil
}

// ClearTimeDiff clears the value of the "time_diff" field.
func (m *RaceResultMutation) ClearTimeDiff() {
	m.time_diff = nil
	m.clearedFields[raceresult.FieldTimeDiff] = struct{}{}
}

// TimeDiffCleared returns if the "time_diff" field was cleared in this mutation.
func (m *RaceResultMutation) TimeDiffCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldTimeDiff]
	return ok
}

// ResetTimeDiff resets all changes to the "time_diff" field.
func (m *RaceResultMutation) ResetTimeDiff() {
	m.time_diff = nil
	delete(m.clearedFields, raceresult.FieldTimeDiff)
}

// SetRun1Seconds sets the "run1_seconds" field.
func (m *RaceResultMutation) SetRun1Seconds(f float64) {
	m.run1_seconds = &f
	m.addrun1_seconds = nil
}

// Run1Seconds returns the value of the "run1_seconds" field in the mutation.
func (m *RaceResultMutation) Run1Seconds() (r float64, exists bool) {
	v := m.run1_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldRun1Seconds returns the old "run1_seconds" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldRun1Seconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRun1Seconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRun1Seconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRun1Seconds: %w", err)
	}
	return oldValue.Run1Seconds, nil
}

// AddRun1Seconds adds f to the "run1_seconds" field.
func (m *RaceResultMutation) AddRun1Seconds(f float64) {
	if m.addrun1_seconds != nil {
		*m.addrun1_seconds += f
	} else {
		m.addrun1_seconds = &f
	}
}

// AddedRun1Seconds returns the value that was added to the "run1_seconds" field in this mutation.
func (m *RaceResultMutation) AddedRun1Seconds() (r float64, exists bool) {
	v := m.addrun1_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearRun1Seconds clears the value of the "run1_seconds" field.
func (m *RaceResultMutation) ClearRun1Seconds() {
	m.run1_seconds = nil
	m.addrun1_seconds = nil
	m.clearedFields[raceresult.FieldRun1Seconds] = struct{}{}
}

// Run1SecondsCleared returns if the "run1_seconds" field was cleared in this mutation.
func (m *RaceResultMutation) Run1SecondsCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldRun1Seconds]
	return ok
}

// ResetRun1Seconds resets all changes to the "run1_seconds" field.
func (m *RaceResultMutation) ResetRun1Seconds() {
	m.run1_seconds = nil
	m.addrun1_seconds = nil
	delete(m.clearedFields, raceresult.FieldRun1Seconds)
}

// SetRun2Seconds sets the "run2_seconds" field.
func (m *RaceResultMutation) SetRun2Seconds(f float64) {
	m.run2_seconds = &f
	m.addrun2_seconds = nil
}

// Run2Seconds returns the value of the "run2_seconds" field in the mutation.
func (m *RaceResultMutation) Run2Seconds() (r float64, exists bool) {
	v := m.run2_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldRun2Seconds returns the old "run2_seconds" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldRun2Seconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRun2Seconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRun2Seconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRun2Seconds: %w", err)
	}
	return oldValue.Run2Seconds, nil
}

// AddRun2Seconds adds f to the "run2_seconds" field.
func (m *RaceResultMutation) AddRun2Seconds(f float64) {
	if m.addrun2_seconds != nil {
		*m.addrun2_seconds += f
	} else {
		m.addrun2_seconds = &f
	}
}

// AddedRun2Seconds returns the value that was added to the "run2_seconds" field in this mutation.
func (m *RaceResultMutation) AddedRun2Seconds() (r float64, exists bool) {
	v := m.addrun2_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearRun2Seconds clears the value of the "run2_seconds" field.
func (m *RaceResultMutation) ClearRun2Seconds() {
	m.run2_seconds = nil
	m.addrun2_seconds = nil
	m.clearedFields[raceresult.FieldRun2Seconds] = struct{}{}
}

// Run2SecondsCleared returns if the "run2_seconds" field was cleared in this mutation.
func (m *RaceResultMutation) Run2SecondsCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldRun2Seconds]
	return ok
}

// ResetRun2Seconds resets all changes to the "run2_seconds" field.
func (m *RaceResultMutation) ResetRun2Seconds() {
	m.run2_seconds = nil
	m.addrun2_seconds = nil
	delete(m.clearedFields, raceresult.FieldRun2Seconds)
}

// SetTotalSeconds sets the "total_seconds" field.
func (m *RaceResultMutation) SetTotalSeconds(f float64) {
	m.total_seconds = &f
	m.addtotal_seconds = nil
}

// TotalSeconds returns the value of the "total_seconds" field in the mutation.
func (m *RaceResultMutation) TotalSeconds() (r float64, exists bool) {
	v := m.total_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSeconds returns the old "total_seconds" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldTotalSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSeconds: %w", err)
	}
	return oldValue.TotalSeconds, nil
}

// AddTotalSeconds adds f to the "total_seconds" field.
func (m *RaceResultMutation) AddTotalSeconds(f float64) {
	if m.addtotal_seconds != nil {
		*m.addtotal_seconds += f
	} else {
		m.addtotal_seconds = &f
	}
}

// AddedTotalSeconds returns the value that was added to the "total_seconds" field in this mutation.
func (m *RaceResultMutation) AddedTotalSeconds() (r float64, exists bool) {
	v := m.addtotal_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalSeconds clears the value of the "total_seconds" field.
func (m *RaceResultMutation) ClearTotalSeconds() {
	m.total_seconds = nil
	m.addtotal_seconds = nil
	m.clearedFields[raceresult.FieldTotalSeconds] = struct{}{}
}

// TotalSecondsCleared returns if the "total_seconds" field was cleared in this mutation.
func (m *RaceResultMutation) TotalSecondsCleared() bool {
	_, ok := m.clearedFields[raceresult.FieldTotalSeconds]
	return ok
}

// ResetTotalSeconds resets all changes to the "total_seconds" field.
func (m *RaceResultMutation) ResetTotalSeconds() {
	m.total_seconds = nil
	m.addtotal_seconds = nil
	delete(m.clearedFields, raceresult.FieldTotalSeconds)
}

// SetStatus sets the "status" field.
func (m *RaceResultMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RaceResultMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RaceResult entity.
// If the RaceResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RaceResultMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RaceResultMutation) ResetStatus() {
	m.status = nil
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *RaceResultMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[raceresult.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *RaceResultMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *RaceResultMutation) EventIDs() (ids []int) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *RaceResultMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// Where appends a list predicates to the RaceResultMutation builder.
func (m *RaceResultMutation) Where(ps ...predicate.RaceResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RaceResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RaceResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RaceResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RaceResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RaceResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RaceResult).
func (m *RaceResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RaceResultMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.event != nil {
		fields = append(fields, raceresult.FieldEventID)
	}
	if m.rank != nil {
		fields = append(fields, raceresult.FieldRank)
	}
	if m.bib != nil {
		fields = append(fields, raceresult.FieldBib)
	}
	if m.name != nil {
		fields = append(fields, raceresult.FieldName)
	}
	if m.name_pinyin != nil {
		fields = append(fields, raceresult.FieldNamePinyin)
	}
	if m.team != nil {
		fields = append(fields, raceresult.FieldTeam)
	}
	if m.run1_time != nil {
		fields = append(fields, raceresult.FieldRun1Time)
	}
	if m.run2_time != nil {
		fields = append(fields, raceresult.FieldRun2Time)
	}
	if m.total_time != nil {
		fields = append(fields, raceresult.FieldTotalTime)
	}
	if m.time_diff != nil {
		fields = append(fields, raceresult.FieldTimeDiff)
	}
	if m.run1_seconds != nil {
		fields = append(fields, raceresult.FieldRun1Seconds)
	}
	if m.run2_seconds != nil {
		fields = append(fields, raceresult.FieldRun2Seconds)
	}
	if m.total_seconds != nil {
		fields = append(fields, raceresult.FieldTotalSeconds)
	}
	if m.status != nil {
		fields = append(fields, raceresult.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RaceResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case raceresult.FieldEventID:
		return m.EventID()
	case raceresult.FieldRank:
		return m.Rank()
	case raceresult.FieldBib:
		return m.Bib()
	case raceresult.FieldName:
		return m.Name()
	case raceresult.FieldNamePinyin:
		return m.NamePinyin()
	case raceresult.FieldTeam:
		return m.Team()
	case raceresult.FieldRun1Time:
		return m.Run1Time()
	case raceresult.FieldRun2Time:
		return m.Run2Time()
	case raceresult.FieldTotalTime:
		return m.TotalTime()
	case raceresult.FieldTimeDiff:
		return m.TimeDiff()
	case raceresult.FieldRun1Seconds:
		return m.Run1Seconds()
	case raceresult.FieldRun2Seconds:
		return m.Run2Seconds()
	case raceresult.FieldTotalSeconds:
		return m.TotalSeconds()
	case raceresult.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RaceResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case raceresult.FieldEventID:
		return m.OldEventID(ctx)
	case raceresult.FieldRank:
		return m.OldRank(ctx)
	case raceresult.FieldBib:
		return m.OldBib(ctx)
	case raceresult.FieldName:
		return m.OldName(ctx)
	case raceresult.FieldNamePinyin:
		return m.OldNamePinyin(ctx)
	case raceresult.FieldTeam:
		return m.OldTeam(ctx)
	case raceresult.FieldRun1Time:
		return m.OldRun1Time(ctx)
	case raceresult.FieldRun2Time:
		return m.OldRun2Time(ctx)
	case raceresult.FieldTotalTime:
		return m.OldTotalTime(ctx)
	case raceresult.FieldTimeDiff:
		return m.OldTimeDiff(ctx)
	case raceresult.FieldRun1Seconds:
		return m.OldRun1Seconds(ctx)
	case raceresult.FieldRun2Seconds:
		return m.OldRun2Seconds(ctx)
	case raceresult.FieldTotalSeconds:
		return m.OldTotalSeconds(ctx)
	case raceresult.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown RaceResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RaceResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case raceresult.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case raceresult.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRank(v)
		return nil
	case raceresult.FieldBib:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBib(v)
		return nil
	case raceresult.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case raceresult.FieldNamePinyin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNamePinyin(v)
		return nil
	case raceresult.FieldTeam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeam(v)
		return nil
	case raceresult.FieldRun1Time:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRun1Time(v)
		return nil
	case raceresult.FieldRun2Time:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRun2Time(v)
		return nil
	case raceresult.FieldTotalTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTime(v)
		return nil
	case raceresult.FieldTimeDiff:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeDiff(v)
		return nil
	case raceresult.FieldRun1Seconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRun1Seconds(v)
		return nil
	case raceresult.FieldRun2Seconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRun2Seconds(v)
		return nil
	case raceresult.FieldTotalSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSeconds(v)
		return nil
	case raceresult.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown RaceResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RaceResultMutation) AddedFields() []string {
	var fields []string
	if m.addrank != nil {
		fields = append(fields, raceresult.FieldRank)
	}
	if m.addrun1_seconds != nil {
		fields = append(fields, raceresult.FieldRun1Seconds)
	}
	if m.addrun2_seconds != nil {
		fields = append(fields, raceresult.FieldRun2Seconds)
	}
	if m.addtotal_seconds != nil {
		fields = append(fields, raceresult.FieldTotalSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RaceResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case raceresult.FieldRank:
		return m.AddedRank()
	case raceresult.FieldRun1Seconds:
		return m.AddedRun1Seconds()
	case raceresult.FieldRun2Seconds:
		return m.AddedRun2Seconds()
	case raceresult.FieldTotalSeconds:
		return m.AddedTotalSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RaceResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case raceresult.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRank(v)
		return nil
	case raceresult.FieldRun1Seconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRun1Seconds(v)
		return nil
	case raceresult.FieldRun2Seconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRun2Seconds(v)
		return nil
	case raceresult.FieldTotalSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown RaceResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RaceResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(raceresult.FieldRank) {
		fields = append(fields, raceresult.FieldRank)
	}
	if m.FieldCleared(raceresult.FieldBib) {
		fields = append(fields, raceresult.FieldBib)
	}
	if m.FieldCleared(raceresult.FieldNamePinyin) {
		fields = append(fields, raceresult.FieldNamePinyin)
	}
	if m.FieldCleared(raceresult.FieldTeam) {
		fields = append(fields, raceresult.FieldTeam)
	}
	if m.FieldCleared(raceresult.FieldRun1Time) {
		fields = append(fields, raceresult.FieldRun1Time)
	}
	if m.FieldCleared(raceresult.FieldRun2Time) {
		fields = append(fields, raceresult.FieldRun2Time)
	}
	if m.FieldCleared(raceresult.FieldTotalTime) {
		fields = append(fields, raceresult.FieldTotalTime)
	}
	if m.FieldCleared(raceresult.FieldTimeDiff) {
		fields = append(fields, raceresult.FieldTimeDiff)
	}
	if m.FieldCleared(raceresult.FieldRun1Seconds) {
		fields = append(fields, raceresult.FieldRun1Seconds)
	}
	if m.FieldCleared(raceresult.FieldRun2Seconds) {
		fields = append(fields, raceresult.FieldRun2Seconds)
	}
	if m.FieldCleared(raceresult.FieldTotalSeconds) {
		fields = append(fields, raceresult.FieldTotalSeconds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RaceResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RaceResultMutation) ClearField(name string) error {
	switch name {
	case raceresult.FieldRank:
		m.ClearRank()
		return nil
	case raceresult.FieldBib:
		m.ClearBib()
		return nil
	case raceresult.FieldNamePinyin:
		m.ClearNamePinyin()
		return nil
	case raceresult.FieldTeam:
		m.ClearTeam()
		return nil
	case raceresult.FieldRun1Time:
		m.ClearRun1Time()
		return nil
	case raceresult.FieldRun2Time:
		m.ClearRun2Time()
		return nil
	case raceresult.FieldTotalTime:
		m.ClearTotalTime()
		return nil
	case raceresult.FieldTimeDiff:
		m.ClearTimeDiff()
		return nil
	case raceresult.FieldRun1Seconds:
		m.ClearRun1Seconds()
		return nil
	case raceresult.FieldRun2Seconds:
		m.ClearRun2Seconds()
		return nil
	case raceresult.FieldTotalSeconds:
		m.ClearTotalSeconds()
		return nil
	}
	return fmt.Errorf("unknown RaceResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RaceResultMutation) ResetField(name string) error {
	switch name {
	case raceresult.FieldEventID:
		m.ResetEventID()
		return nil
	case raceresult.FieldRank:
		m.ResetRank()
		return nil
	case raceresult.FieldBib:
		m.ResetBib()
		return nil
	case raceresult.FieldName:
		m.ResetName()
		return nil
	case raceresult.FieldNamePinyin:
		m.ResetNamePinyin()
		return nil
	case raceresult.FieldTeam:
		m.ResetTeam()
		return nil
	case raceresult.FieldRun1Time:
		m.ResetRun1Time()
		return nil
	case raceresult.FieldRun2Time:
		m.ResetRun2Time()
		return nil
	case raceresult.FieldTotalTime:
		m.ResetTotalTime()
		return nil
	case raceresult.FieldTimeDiff:
		m.ResetTimeDiff()
		return nil
	case raceresult.FieldRun1Seconds:
		m.ResetRun1Seconds()
		return nil
	case raceresult.FieldRun2Seconds:
		m.ResetRun2Seconds()
		return nil
	case raceresult.FieldTotalSeconds:
		m.ResetTotalSeconds()
		return nil
	case raceresult.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown RaceResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RaceResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.event != nil {
		edges = append(edges, raceresult.EdgeEvent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RaceResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case raceresult.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RaceResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RaceResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RaceResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevent {
		edges = append(edges, raceresult.EdgeEvent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RaceResultMutation) EdgeCleared(name string) bool {
	switch name {
	case raceresult.EdgeEvent:
		return m.clearedevent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RaceResultMutation) ClearEdge(name string) error {
	switch name {
	case raceresult.EdgeEvent:
		m.ClearEvent()
		return nil
	}
	return fmt.Errorf("unknown RaceResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RaceResultMutation) ResetEdge(name string) error {
	switch name {
	case raceresult.EdgeEvent:
		m.ResetEvent()
		return nil
	}
	return fmt.Errorf("unknown RaceResult edge %s", name)
}
