// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/diffuselabs/diffused/ent/challengeevent"
	"github.com/diffuselabs/diffused/ent/predicate"
)

// ChallengeEventUpdate is the builder for updating ChallengeEvent entities.
type ChallengeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdate) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChallengeEventUpdate) SetSessionID(v string) *ChallengeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableSessionID(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeEventUpdate) SetChallengeID(v string) *ChallengeEventUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableChallengeID(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *ChallengeEventUpdate) SetChallengeType(v string) *ChallengeEventUpdate {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableChallengeType(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetUnderstanding sets the "understanding" field.
func (_u *ChallengeEventUpdate) SetUnderstanding(v string) *ChallengeEventUpdate {
	_u.mutation.SetUnderstanding(v)
	return _u
}

// SetNillableUnderstanding sets the "understanding" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableUnderstanding(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetUnderstanding(*v)
	}
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdate) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := challengeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := challengeevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Understanding(); ok {
		if err := challengeevent.UnderstandingValidator(v); err != nil {
			return &ValidationError{Name: "understanding", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.understanding": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(challengeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(challengeevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Understanding(); ok {
		_spec.SetField(challengeevent.FieldUnderstanding, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeEventUpdateOne is the builder for updating a single ChallengeEvent entity.
type ChallengeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChallengeEventUpdateOne) SetSessionID(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableSessionID(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeEventUpdateOne) SetChallengeID(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableChallengeID(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *ChallengeEventUpdateOne) SetChallengeType(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableChallengeType(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetUnderstanding sets the "understanding" field.
func (_u *ChallengeEventUpdateOne) SetUnderstanding(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetUnderstanding(v)
	return _u
}

// SetNillableUnderstanding sets the "understanding" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableUnderstanding(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetUnderstanding(*v)
	}
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdateOne) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdateOne) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeEventUpdateOne) Select(field string, fields ...string) *ChallengeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChallengeEvent entity.
func (_u *ChallengeEventUpdateOne) Save(ctx context.Context) (*ChallengeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) SaveX(ctx context.Context) *ChallengeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := challengeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := challengeevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Understanding(); ok {
		if err := challengeevent.UnderstandingValidator(v); err != nil {
			return &ValidationError{Name: "understanding", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.understanding": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdateOne) sqlSave(ctx context.Context) (_node *ChallengeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChallengeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challengeevent.FieldID)
		for _, f := range fields {
			if !challengeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challengeevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(challengeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(challengeevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Understanding(); ok {
		_spec.SetField(challengeevent.FieldUnderstanding, field.TypeString, value)
	}
	_node = &ChallengeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
